package english

import (
	"github.com/lingotutor/lingotutor/internal/curriculum"
	"github.com/lingotutor/lingotutor/internal/exercise"
)

func init() {
	curriculum.Register(Language, lessonsByLevel())
}

func lessonsByLevel() map[curriculum.Level][]curriculum.Lesson {
	return map[curriculum.Level][]curriculum.Lesson{
		curriculum.LevelBasic: {
			{
				ID:          "en-basic-1",
				Title:       "Saudações",
				Icon:        "👋",
				Description: "Cumprimente e se apresente.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer 'Bom dia' em inglês?",
						Options: []string{"Good morning", "Good night", "See you later"},
						Answer:  "Good morning",
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Prazer em conhecer você'.",
						Options: []string{"Nice to meet you", "See you soon", "Good luck"},
						Answer:  "Nice to meet you",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte a frase: Meu nome é Ana.",
						Words:  []string{"name", "is", "My", "Ana"},
						Order:  []string{"My", "name", "is", "Ana"},
					},
				},
			},
			{
				ID:          "en-basic-2",
				Title:       "No café",
				Icon:        "☕",
				Description: "Peça bebidas simples.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como pedir um café educadamente?",
						Options: []string{"I'd like a coffee, please.", "Give me coffee.", "Bring coffee now."},
						Answer:  "I'd like a coffee, please.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Onde fica o banheiro?",
						Words:  []string{"the", "Where", "is", "bathroom", "?"},
						Order:  []string{"Where", "is", "the", "bathroom", "?"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Selecione a resposta para 'Obrigado':",
						Options: []string{"Thanks!", "Later", "Hello!"},
						Answer:  "Thanks!",
					},
				},
			},
			{
				ID:          "en-basic-3",
				Title:       "Apresentações",
				Icon:        "🙋",
				Description: "Fale sobre você e pergunte o nome.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar o nome de alguém?",
						Options: []string{"What's your name?", "Where are you?", "How old are you?"},
						Answer:  "What's your name?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Eu sou do Brasil.",
						Words:  []string{"Brazil", "am", "I", "from"},
						Order:  []string{"I", "am", "from", "Brazil"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Escolha a resposta para 'Nice to meet you'.",
						Options: []string{"Nice to meet you too.", "Bye now.", "Good luck."},
						Answer:  "Nice to meet you too.",
					},
				},
			},
			{
				ID:          "en-basic-4",
				Title:       "Números",
				Icon:        "🔢",
				Description: "Conte de 1 a 10 em situações simples.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer 'sete' em inglês?",
						Options: []string{"seven", "six", "ten"},
						Answer:  "seven",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Eu tenho três gatos.",
						Words:  []string{"three", "have", "I", "cats"},
						Order:  []string{"I", "have", "three", "cats"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Qual é a tradução de 'nine'?",
						Options: []string{"nove", "cinco", "dez"},
						Answer:  "nove",
					},
				},
			},
			{
				ID:          "en-basic-5",
				Title:       "Cores",
				Icon:        "🎨",
				Description: "Reconheça e fale cores básicas.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Qual cor é 'red'?",
						Options: []string{"vermelho", "azul", "verde"},
						Answer:  "vermelho",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Eu gosto da cor azul.",
						Words:  []string{"blue", "color", "the", "like", "I"},
						Order:  []string{"I", "like", "the", "color", "blue"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'yellow'.",
						Options: []string{"amarelo", "cinza", "branco"},
						Answer:  "amarelo",
					},
				},
			},
			{
				ID:          "en-basic-6",
				Title:       "Família",
				Icon:        "👨‍👩‍👧",
				Description: "Fale sobre membros da família.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer 'irmã' em inglês?",
						Options: []string{"sister", "aunt", "mother"},
						Answer:  "sister",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Meu pai é médico.",
						Words:  []string{"is", "My", "father", "doctor", "a"},
						Order:  []string{"My", "father", "is", "a", "doctor"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'grandmother'.",
						Options: []string{"avó", "tio", "prima"},
						Answer:  "avó",
					},
				},
			},
		},
		curriculum.LevelIntermediate: {
			{
				ID:          "en-inter-1",
				Title:       "Aeroporto",
				Icon:        "🛫",
				Description: "Pergunte e responda no aeroporto.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer 'balcão de check-in'?",
						Options: []string{"Check-in counter", "Boarding gate", "Baggage claim"},
						Answer:  "Check-in counter",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Eu tenho uma mala de mão.",
						Words:  []string{"a", "carry-on", "bag", "have", "I", "."},
						Order:  []string{"I", "have", "a", "carry-on", "bag", "."},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Qual é o portão de embarque?'.",
						Options: []string{"What's the boarding gate?", "Where is the airplane?", "How long is the flight?"},
						Answer:  "What's the boarding gate?",
					},
				},
			},
			{
				ID:          "en-inter-2",
				Title:       "Hotel",
				Icon:        "🏨",
				Description: "Faça check-in e tire dúvidas.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Tenho uma reserva'.",
						Options: []string{"I have a reservation.", "I need the receipt.", "I lost my luggage."},
						Answer:  "I have a reservation.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Preciso de mais toalhas, por favor.",
						Words:  []string{"more", "towels", "please", "I", "need", ","},
						Order:  []string{"I", "need", "more", "towels", ",", "please"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar pela senha do Wi-Fi?",
						Options: []string{"What's the Wi-Fi password?", "Where is the Wi-Fi?", "Do you sell Wi-Fi?"},
						Answer:  "What's the Wi-Fi password?",
					},
				},
			},
			{
				ID:          "en-inter-3",
				Title:       "Restaurante",
				Icon:        "🍝",
				Description: "Faça pedidos detalhados e perguntas.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar se o prato é vegetariano?",
						Options: []string{"Is this dish vegetarian?", "Where is the chef?", "Do you like vegetables?"},
						Answer:  "Is this dish vegetarian?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Eu gostaria de reservar uma mesa para dois.",
						Words:  []string{"for", "table", "like", "two", "a", "would", "I", "to", "reserve"},
						Order:  []string{"I", "would", "like", "to", "reserve", "a", "table", "for", "two"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Could we have the check, please?'.",
						Options: []string{"Poderíamos ter a conta, por favor?", "Podemos trocar de mesa?", "Tem Wi-Fi aqui?"},
						Answer:  "Poderíamos ter a conta, por favor?",
					},
				},
			},
			{
				ID:          "en-inter-4",
				Title:       "Compras",
				Icon:        "🛍️",
				Description: "Negocie preços e peça tamanhos.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar outro tamanho?",
						Options: []string{"Do you have this in a different size?", "Where is the cashier?", "Can I get a discount?"},
						Answer:  "Do you have this in a different size?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Você tem esse modelo em preto?",
						Words:  []string{"this", "in", "black", "you", "Do", "have", "model"},
						Order:  []string{"Do", "you", "have", "this", "model", "in", "black"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Melhor frase para pedir desconto?",
						Options: []string{"Is there any discount available?", "Give me a discount now.", "How much is your salary?"},
						Answer:  "Is there any discount available?",
					},
				},
			},
			{
				ID:          "en-inter-5",
				Title:       "Transporte",
				Icon:        "🚌",
				Description: "Use ônibus, metrô e táxi.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar o horário do próximo ônibus?",
						Options: []string{"What time is the next bus?", "Where is the bus color?", "Do you drive a bus?"},
						Answer:  "What time is the next bus?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Preciso de um táxi até o hotel.",
						Words:  []string{"to", "a", "Need", "hotel", "taxi", "the", "I"},
						Order:  []string{"I", "Need", "a", "taxi", "to", "the", "hotel"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Where is the subway station?'.",
						Options: []string{"Onde fica a estação de metrô?", "Quanto custa a passagem?", "Você aceita cartão?"},
						Answer:  "Onde fica a estação de metrô?",
					},
				},
			},
			{
				ID:          "en-inter-6",
				Title:       "Consultório",
				Icon:        "🩺",
				Description: "Explique sintomas e receba instruções.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer que está com dor de cabeça?",
						Options: []string{"I have a headache.", "My head is breakfast.", "I need a new head."},
						Answer:  "I have a headache.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Estou tomando este remédio duas vezes ao dia.",
						Words:  []string{"a", "day", "taking", "twice", "I", "am", "this", "medicine"},
						Order:  []string{"I", "am", "taking", "this", "medicine", "twice", "a", "day"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'You should rest and drink water'.",
						Options: []string{"Você deve descansar e beber água", "Você deve correr agora", "Você deve trabalhar mais"},
						Answer:  "Você deve descansar e beber água",
					},
				},
			},
		},
		curriculum.LevelAdvanced: {
			{
				ID:          "en-adv-1",
				Title:       "Reunião",
				Icon:        "💼",
				Description: "Use frases formais em reuniões.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Escolha a melhor forma de sugerir uma pausa.",
						Options: []string{"Shall we take a short break?", "Stop talking now.", "Let's end the meeting."},
						Answer:  "Shall we take a short break?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Se eu soubesse, teria preparado slides.",
						Words:  []string{"known", "prepared", "If", "slides", "had", "I", "would", "have", "I", ","},
						Order:  []string{"If", "I", "had", "known", ",", "I", "would", "have", "prepared", "slides"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Vamos retomar esse ponto mais tarde'.",
						Options: []string{"Let's revisit this point later.", "Stop this conversation now.", "We will cancel this topic."},
						Answer:  "Let's revisit this point later.",
					},
				},
			},
			{
				ID:          "en-adv-2",
				Title:       "Apresentações",
				Icon:        "📊",
				Description: "Estruture apresentações e pontos-chave.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Melhor forma de introduzir um gráfico?",
						Options: []string{"As we can see in this chart...", "Look at this thing.", "Here is a picture."},
						Answer:  "As we can see in this chart...",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Vamos passar para a próxima seção.",
						Words:  []string{"move", "next", "section", "to", "Let's", "the"},
						Order:  []string{"Let's", "move", "to", "the", "next", "section"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Let's keep this slide brief'.",
						Options: []string{"Vamos manter este slide breve.", "Vamos pular este slide.", "Vamos imprimir este slide."},
						Answer:  "Vamos manter este slide breve.",
					},
				},
			},
			{
				ID:          "en-adv-3",
				Title:       "Negociação",
				Icon:        "🤝",
				Description: "Negocie prazos e condições.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como propor um prazo mais longo?",
						Options: []string{"Could we extend the deadline by a week?", "Give me more time now.", "Do you like deadlines?"},
						Answer:  "Could we extend the deadline by a week?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Podemos discutir um desconto maior?",
						Words:  []string{"a", "discount", "We", "larger", "discuss", "can", "?"},
						Order:  []string{"We", "can", "discuss", "a", "larger", "discount", "?"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Melhor frase para encerrar negociação cordialmente:",
						Options: []string{"Let's revisit this tomorrow with fresh numbers.", "We are done. Bye.", "No deal, forget it."},
						Answer:  "Let's revisit this tomorrow with fresh numbers.",
					},
				},
			},
			{
				ID:          "en-adv-4",
				Title:       "Feedback",
				Icon:        "📝",
				Description: "Dê e receba feedback construtivo.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como suavizar uma crítica?",
						Options: []string{"One area we could improve is...", "This is terrible.", "You failed again."},
						Answer:  "One area we could improve is...",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Agradeço o retorno detalhado.",
						Words:  []string{"feedback", "the", "appreciate", "detailed", "I"},
						Order:  []string{"I", "appreciate", "the", "detailed", "feedback"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Could you elaborate on that point?'.",
						Options: []string{"Você poderia detalhar esse ponto?", "Você pode repetir isso rápido?", "Você pode falar mais baixo?"},
						Answer:  "Você poderia detalhar esse ponto?",
					},
				},
			},
			{
				ID:          "en-adv-5",
				Title:       "Entrevista",
				Icon:        "🎤",
				Description: "Responda perguntas comportamentais.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como iniciar uma resposta STAR?",
						Options: []string{"In that situation, my task was...", "I don't remember.", "It was fine."},
						Answer:  "In that situation, my task was...",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: O resultado foi um aumento de 20% nas vendas.",
						Words:  []string{"of", "The", "increase", "20%", "sales", "in", "was", "result", "an"},
						Order:  []string{"The", "result", "was", "an", "increase", "of", "20%", "in", "sales"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Melhor forma de falar sobre um erro:",
						Options: []string{"I learned from that mistake and improved my process.", "It wasn't my fault.", "I never make mistakes."},
						Answer:  "I learned from that mistake and improved my process.",
					},
				},
			},
			{
				ID:          "en-adv-6",
				Title:       "Escrita formal",
				Icon:        "✉️",
				Description: "Escreva e-mails formais e resumos.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como solicitar confirmação de recebimento?",
						Options: []string{"Please confirm receipt at your earliest convenience.", "Did you get it?", "Answer me now."},
						Answer:  "Please confirm receipt at your earliest convenience.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Anexo segue o relatório solicitado.",
						Words:  []string{"report", "requested", "Attached", "is", "the"},
						Order:  []string{"Attached", "is", "the", "requested", "report"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Looking forward to your response'.",
						Options: []string{"Aguardo seu retorno", "Até mais", "Aguarde minha resposta"},
						Answer:  "Aguardo seu retorno",
					},
				},
			},
		},
	}
}
