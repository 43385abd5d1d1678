// Package english registers the English curriculum.
package english

import "github.com/lingotutor/lingotutor/internal/curriculum"

// Language is the English catalog entry.
var Language = curriculum.Language{
	Name: "Inglês",
	Flag: "🇺🇸",
}
