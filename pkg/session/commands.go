package session

import "io"

type command int

const (
	cmdText command = iota
	cmdEmpty
	cmdQuit
	cmdOpen
	cmdInsertImage
	cmdArchive
	cmdNew
	cmdHelp
)

var commands = map[string]command{
	":q":            cmdQuit,
	":quit":         cmdQuit,
	":exit":         cmdQuit,
	":o":            cmdOpen,
	":open":         cmdOpen,
	":ii":           cmdInsertImage,
	":insert image": cmdInsertImage,
	":a":            cmdArchive,
	":archive":      cmdArchive,
	":n":            cmdNew,
	":new":          cmdNew,
	":h":            cmdHelp,
	":help":         cmdHelp,
}

// parseCommand classifies a line read in the open-note loop. Anything that
// is not an exact command is note text.
func parseCommand(line string) command {
	if line == "" {
		return cmdEmpty
	}
	if c, ok := commands[line]; ok {
		return c
	}
	return cmdText
}

// Help is the command summary printed by :help.
const Help = `
  :q or :quit or :exit - exit the program (or current note)
  :o or :open - open a new note
  :ii or :insert image - insert an image into the note
  :a or :archive - archive the note
  :n or :new - create a new note
  :h or :help - show this help text
`

// PrintHelp writes the command summary to w.
func PrintHelp(w io.Writer) {
	_, _ = io.WriteString(w, Help)
}
