package domain

// Command es el conjunto cerrado de slash commands que el bot entiende.
type Command int

const (
	CommandUnknown Command = iota
	CommandPing
	CommandPlay
	CommandPause
	CommandResume
	CommandSkip
	CommandStop
	CommandQueue
	CommandRoulette
)

var commandNames = map[Command]string{
	CommandPing:     "ping",
	CommandPlay:     "play",
	CommandPause:    "pause",
	CommandResume:   "resume",
	CommandSkip:     "skip",
	CommandStop:     "stop",
	CommandQueue:    "queue",
	CommandRoulette: "roulette",
}

var commandsByName = func() map[string]Command {
	m := make(map[string]Command, len(commandNames))
	for c, n := range commandNames {
		m[n] = c
	}
	return m
}()

// KnownCommands devuelve los comandos registrables, en el orden en que se publican.
func KnownCommands() []Command {
	return []Command{
		CommandPing,
		CommandPlay,
		CommandPause,
		CommandResume,
		CommandSkip,
		CommandStop,
		CommandQueue,
		CommandRoulette,
	}
}

// ParseCommand hace match exacto por nombre; cualquier otra cosa es CommandUnknown.
func ParseCommand(name string) Command {
	if c, ok := commandsByName[name]; ok {
		return c
	}
	return CommandUnknown
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}
