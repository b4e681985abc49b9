package service

import (
	"math/rand"
	"strings"
)

const MentionNotUnderstood = "> ⚠️ I do not understand what you are saying."

// orden importa: gana la primera palabra que aparezca en la lista
var mentionWords = []string{
	"wena", "hola", "dross", "noni", "miku", "empanada", "empanadas",
	"chile", "japon", "calamar", "lol", "random",
}

var mentionTextReplies = map[string][]string{
	"wena": {"Wena wena", "Wena shoro"},
	"hola": {"Wena wena", "Wena shoro"},
}

// MentionService contesta cuando alguien menciona al bot.
type MentionService struct {
	pick func(n int) int
}

func NewMentionService(pick func(n int) int) *MentionService {
	if pick == nil {
		pick = rand.Intn
	}
	return &MentionService{pick: pick}
}

// Reply devuelve el texto a mandar y si hay que mandar algo. Las palabras que en su
// momento disparaban audio no responden nada: no hay motor de voz.
func (s *MentionService) Reply(content string) (string, bool) {
	lower := strings.ToLower(content)

	found := false
	for _, w := range mentionWords {
		if strings.Contains(lower, w) {
			found = true
			break
		}
	}
	if !found {
		return MentionNotUnderstood, true
	}

	for _, w := range []string{"wena", "hola"} {
		if strings.Contains(lower, w) {
			replies := mentionTextReplies[w]
			return replies[s.pick(len(replies))], true
		}
	}
	return "", false
}
