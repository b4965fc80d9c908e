package ports

import "infernocorp/internal/domain/game"

type Notifier interface {
	Notify(message string, severity game.Severity)
}
