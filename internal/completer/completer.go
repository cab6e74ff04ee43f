// Package completer provides tab completion for kvsh. Command names complete
// at the start of the line; get, set and del additionally complete the keys
// currently in the store.
package completer

import (
	"github.com/chzyer/readline"
)

// Completer adapts the command set and the current store keys to the
// readline.AutoCompleter interface. It is rebuilt on each loop iteration.
type Completer struct {
	readlineCompleter *readline.PrefixCompleter
}

// NewCompleter returns a new Completer instance with an empty
// underlying PrefixCompleter.
func NewCompleter() *Completer {
	return &Completer{readlineCompleter: readline.NewPrefixCompleter()}
}

// Update rebuilds the completion tree from the registered command names and
// the keys currently stored. Commands in keyed receive key suggestions.
func (c *Completer) Update(names []string, keyed map[string]bool, keys []string) {

	keyItems := make([]readline.PrefixCompleterInterface, 0, len(keys))
	for _, key := range keys {
		keyItems = append(keyItems, readline.PcItem(key))
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(names))
	for _, name := range names {
		if keyed[name] {
			items = append(items, readline.PcItem(name, keyItems...))
		} else {
			items = append(items, readline.PcItem(name))
		}
	}

	c.readlineCompleter = readline.NewPrefixCompleter(items...)

}

// Do delegates the completion logic to the underlying PrefixCompleter.
// It satisfies the readline.AutoCompleter interface.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	return c.readlineCompleter.Do(line, pos)
}
