package responses

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byAction map[string]actionFunc
}

func newActionFactory(onAccept, onDecline, onCancel, onReconfirm actionFunc) *actionFactory {
	return &actionFactory{
		byAction: map[string]actionFunc{
			"accept":    onAccept,
			"decline":   onDecline,
			"reject":    onDecline,
			"cancel":    onCancel,
			"withdraw":  onCancel,
			"reconfirm": onReconfirm,
		},
	}
}

func (f *actionFactory) get(action string) (actionFunc, bool) {
	action = strings.ToLower(strings.TrimSpace(action))
	fn, ok := f.byAction[action]
	return fn, ok
}
