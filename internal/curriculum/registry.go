package curriculum

import "sync"

var (
	mu        sync.RWMutex
	catalog   = make(map[string]*registeredLanguage)
	langOrder []string
)

type registeredLanguage struct {
	lang   Language
	levels map[Level][]Lesson
}

// Register adds a language and its lessons to the catalog. Called from
// the init() of a language data package; registration order is the
// display order.
func Register(lang Language, lessons map[Level][]Lesson) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := catalog[lang.Name]; dup {
		panic("curriculum: duplicate language " + lang.Name)
	}
	catalog[lang.Name] = &registeredLanguage{lang: lang, levels: lessons}
	langOrder = append(langOrder, lang.Name)
}

// Languages returns all registered languages in registration order.
func Languages() []Language {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Language, 0, len(langOrder))
	for _, name := range langOrder {
		out = append(out, catalog[name].lang)
	}
	return out
}

// Levels returns the levels that have lessons for the language, in the
// fixed Básico → Intermediário → Avançado order.
func Levels(language string) ([]Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	rl, ok := catalog[language]
	if !ok {
		return nil, &NotFoundError{Language: language}
	}
	var out []Level
	for _, lvl := range LevelOrder {
		if len(rl.levels[lvl]) > 0 {
			out = append(out, lvl)
		}
	}
	return out, nil
}

// Lessons returns the ordered lesson sequence for a language and level.
func Lessons(language string, level Level) ([]Lesson, error) {
	mu.RLock()
	defer mu.RUnlock()

	rl, ok := catalog[language]
	if !ok {
		return nil, &NotFoundError{Language: language}
	}
	lessons, ok := rl.levels[level]
	if !ok || len(lessons) == 0 {
		return nil, &NotFoundError{Language: language, Level: level}
	}
	return lessons, nil
}

// GetLesson returns a single lesson by id within a language and level.
func GetLesson(language string, level Level, id string) (Lesson, error) {
	lessons, err := Lessons(language, level)
	if err != nil {
		return Lesson{}, err
	}
	for _, l := range lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, &NotFoundError{Language: language, Level: level, LessonID: id}
}

// LessonIDs returns the ordered lesson ids for a language and level.
// The order is the unlock order.
func LessonIDs(language string, level Level) ([]string, error) {
	lessons, err := Lessons(language, level)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(lessons))
	for i, l := range lessons {
		ids[i] = l.ID
	}
	return ids, nil
}
