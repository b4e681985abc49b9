package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

type OptionKind int

const (
	OptionOther OptionKind = iota
	OptionString
	OptionInteger
	OptionBoolean
	OptionNumber
)

// Option es un argumento ya resuelto de una interacción. Se lee una vez y se descarta.
type Option struct {
	Name  string
	Kind  OptionKind
	Value any
}

type Options []Option

// Lookup busca por nombre; nunca indexa a ciegas.
func (o Options) Lookup(name string) (Option, bool) {
	for _, opt := range o {
		if opt.Name == name {
			return opt, true
		}
	}
	return Option{}, false
}

// Int devuelve el entero de la opción `name`. Si no existe con ese nombre,
// cae a la primera opción de tipo entero.
func (o Options) Int(name string) (int64, bool) {
	if opt, ok := o.Lookup(name); ok {
		return toInt(opt.Value)
	}
	for _, opt := range o {
		if opt.Kind == OptionInteger {
			return toInt(opt.Value)
		}
	}
	return 0, false
}

func (o Options) String(name string) (string, bool) {
	opt, ok := o.Lookup(name)
	if !ok {
		return "", false
	}
	s, ok := opt.Value.(string)
	return s, ok
}

// Discord manda los números como JSON, así que lo normal es float64.
func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}

// Invocation es lo que un handler ve de una interacción: vive solo durante un dispatch.
type Invocation struct {
	Command       Command
	Name          string
	InteractionID string
	GuildID       string
	ChannelID     string
	UserID        string
	Options       Options
}
