package practice

import "fmt"

// buildPrompt asks for a short Duolingo-style batch. The learner's XP
// gives the model a rough sense of level.
func buildPrompt(language string, xp int) string {
	return fmt.Sprintf(`Gere %d exercícios rápidos para alunos de %s no estilo Duolingo.
Use apenas os tipos "select" e "arrange".
Responda somente com JSON válido sem texto extra.
Estrutura:
[
  {"type": "select", "prompt": "...", "options": ["A","B","C"], "answer": "A"},
  {"type": "arrange", "prompt": "...", "words": ["palavra1","palavra2"], "answer": ["palavra1","palavra2"]}
]
Priorize temas do nível atual e mantenha instruções curtas. O usuário tem %d XP.`,
		exerciseCount, language, xp)
}
