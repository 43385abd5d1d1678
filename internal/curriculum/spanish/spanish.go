// Package spanish registers the Spanish curriculum.
package spanish

import "github.com/lingotutor/lingotutor/internal/curriculum"

// Language is the Spanish catalog entry.
var Language = curriculum.Language{
	Name: "Espanhol",
	Flag: "🇪🇸",
}
