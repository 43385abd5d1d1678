package spanish

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
				ID:          "es-basic-1",
				Title:       "Saludos",
				Icon:        "🙋",
				Description: "Cumprimente e apresente-se.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer 'Boa tarde' em espanhol?",
						Options: []string{"Buenas tardes", "Buenos días", "Buenas noches"},
						Answer:  "Buenas tardes",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Meu nome é Carla.",
						Words:  []string{"Carla", "es", "nombre", "Mi"},
						Order:  []string{"Mi", "nombre", "es", "Carla"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Prazer em conhecê-lo'.",
						Options: []string{"Encantado de conocerte", "Hasta pronto", "Cuídate"},
						Answer:  "Encantado de conocerte",
					},
				},
			},
			{
				ID:          "es-basic-2",
				Title:       "Restaurante",
				Icon:        "🍽️",
				Description: "Peça comida de forma cortês.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como pedir a conta?",
						Options: []string{"La cuenta, por favor.", "El baño, por favor.", "Otra mesa, por favor."},
						Answer:  "La cuenta, por favor.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Eu gostaria de água sem gás.",
						Words:  []string{"agua", "sin", "gas", "Me", "gustaría"},
						Order:  []string{"Me", "gustaría", "agua", "sin", "gas"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Escolha a tradução para 'obrigado'.",
						Options: []string{"Gracias", "Perdón", "Hola"},
						Answer:  "Gracias",
					},
				},
			},
			{
				ID:          "es-basic-3",
				Title:       "Presentaciones",
				Icon:        "👥",
				Description: "Apresente-se e pergunte nomes.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar 'Qual é o seu nome?'",
						Options: []string{"¿Cómo te llamas?", "¿Dónde estás?", "¿Qué hora es?"},
						Answer:  "¿Cómo te llamas?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Sou do Brasil.",
						Words:  []string{"Brasil", "soy", "de", "Yo"},
						Order:  []string{"Yo", "soy", "de", "Brasil"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Resposta apropriada para 'Encantado de conocerte'.",
						Options: []string{"Igualmente.", "Hasta mañana.", "No gracias."},
						Answer:  "Igualmente.",
					},
				},
			},
			{
				ID:          "es-basic-4",
				Title:       "Números",
				Icon:        "🔢",
				Description: "Use números de 1 a 10.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer 'cinco' em espanhol?",
						Options: []string{"cinco", "siete", "ocho"},
						Answer:  "cinco",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Tenho duas irmãs.",
						Words:  []string{"hermanas", "dos", "Tengo"},
						Order:  []string{"Tengo", "dos", "hermanas"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'nueve'.",
						Options: []string{"nove", "cinco", "quatro"},
						Answer:  "nove",
					},
				},
			},
			{
				ID:          "es-basic-5",
				Title:       "Colores",
				Icon:        "🎨",
				Description: "Fale sobre cores comuns.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Qual é a tradução de 'rojo'?",
						Options: []string{"vermelho", "azul", "preto"},
						Answer:  "vermelho",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Eu gosto da cor verde.",
						Words:  []string{"verde", "color", "Me", "gusta", "el"},
						Order:  []string{"Me", "gusta", "el", "color", "verde"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'amarillo'.",
						Options: []string{"amarelo", "branco", "marrom"},
						Answer:  "amarelo",
					},
				},
			},
			{
				ID:          "es-basic-6",
				Title:       "Familia",
				Icon:        "👨‍👩‍👧",
				Description: "Descreva sua família.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer 'irmão' em espanhol?",
						Options: []string{"hermano", "tío", "primo"},
						Answer:  "hermano",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Minha mãe é professora.",
						Words:  []string{"profesora", "Mi", "es", "madre"},
						Order:  []string{"Mi", "madre", "es", "profesora"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'abuelo'.",
						Options: []string{"avô", "irmão", "sobrinho"},
						Answer:  "avô",
					},
				},
			},
		},
		curriculum.LevelIntermediate: {
			{
				ID:          "es-inter-1",
				Title:       "Hotel",
				Icon:        "🏨",
				Description: "Check-in e dúvidas comuns.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Tenho uma reserva'.",
						Options: []string{"Tengo una reserva.", "Necesito una cama.", "Perdí mi pasaporte."},
						Answer:  "Tengo una reserva.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: A que horas é o café da manhã?",
						Words:  []string{"el", "desayuno", "es", "¿A", "qué", "hora", "?"},
						Order:  []string{"¿A", "qué", "hora", "es", "el", "desayuno", "?"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar pela senha do Wi-Fi?",
						Options: []string{"¿Cuál es la contraseña del Wi-Fi?", "¿Dónde está el Wi-Fi?", "¿Vende Wi-Fi?"},
						Answer:  "¿Cuál es la contraseña del Wi-Fi?",
					},
				},
			},
			{
				ID:          "es-inter-2",
				Title:       "Passeio",
				Icon:        "🗺️",
				Description: "Peça direções e informações.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Quanto custa a entrada?'.",
						Options: []string{"¿Cuánto cuesta la entrada?", "¿Dónde está la entrada?", "¿Puedo salir ahora?"},
						Answer:  "¿Cuánto cuesta la entrada?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Estou procurando a estação de metrô.",
						Words:  []string{"buscando", "Estoy", "metro", "estación", "la", "de"},
						Order:  []string{"Estoy", "buscando", "la", "estación", "de", "metro"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Escolha a melhor opção para pedir ajuda.",
						Options: []string{"¿Puedes ayudarme?", "Necesito un taxi.", "Hasta luego."},
						Answer:  "¿Puedes ayudarme?",
					},
				},
			},
			{
				ID:          "es-inter-3",
				Title:       "Restaurante",
				Icon:        "🍲",
				Description: "Peça pratos e tire dúvidas do cardápio.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar se o prato é picante?",
						Options: []string{"¿Es picante este plato?", "¿Dónde está el picante?", "¿Cuánto cuesta el picante?"},
						Answer:  "¿Es picante este plato?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Poderia trazer água sem gelo?",
						Words:  []string{"sin", "Podría", "agua", "traer", "hielo", "?"},
						Order:  []string{"Podría", "traer", "agua", "sin", "hielo", "?"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'La cuenta, por favor'.",
						Options: []string{"A conta, por favor.", "A sobremesa, por favor.", "A água, por favor."},
						Answer:  "A conta, por favor.",
					},
				},
			},
			{
				ID:          "es-inter-4",
				Title:       "Compras",
				Icon:        "🛒",
				Description: "Peça tamanhos, preços e descontos.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar outro tamanho?",
						Options: []string{"¿Tiene otra talla?", "¿Dónde está la talla?", "¿Qué talla soy yo?"},
						Answer:  "¿Tiene otra talla?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Quanto custa este casaco?",
						Words:  []string{"cuesta", "este", "abrigo", "?", "¿Cuánto"},
						Order:  []string{"¿Cuánto", "cuesta", "este", "abrigo", "?"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Melhor frase para pedir desconto.",
						Options: []string{"¿Hay algún descuento disponible?", "Dame descuento ahora.", "No quiero pagar."},
						Answer:  "¿Hay algún descuento disponible?",
					},
				},
			},
			{
				ID:          "es-inter-5",
				Title:       "Transporte",
				Icon:        "🚇",
				Description: "Use metrô, ônibus e táxi.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como perguntar o horário do próximo metrô?",
						Options: []string{"¿A qué hora pasa el próximo metro?", "¿Dónde compro um metrô?", "¿Te gusta el metro?"},
						Answer:  "¿A qué hora pasa el próximo metro?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Preciso de um táxi até o aeroporto.",
						Words:  []string{"un", "Necesito", "taxi", "hasta", "aeropuerto", "el"},
						Order:  []string{"Necesito", "un", "taxi", "hasta", "el", "aeropuerto"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza '¿Dónde se compra el billete?'.",
						Options: []string{"Onde se compra o bilhete?", "Quanto custa a passagem?", "Qual é a cor do bilhete?"},
						Answer:  "Onde se compra o bilhete?",
					},
				},
			},
			{
				ID:          "es-inter-6",
				Title:       "Saúde",
				Icon:        "🏥",
				Description: "Descreva sintomas e entenda recomendações.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como dizer que está com febre?",
						Options: []string{"Tengo fiebre.", "Tengo hambre.", "Tengo prisa."},
						Answer:  "Tengo fiebre.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Estou tomando este remédio três vezes ao dia.",
						Words:  []string{"veces", "al", "día", "este", "tomando", "Estoy", "medicamento", "tres"},
						Order:  []string{"Estoy", "tomando", "este", "medicamento", "tres", "veces", "al", "día"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Debe descansar y tomar agua'.",
						Options: []string{"Você deve descansar e tomar água", "Você deve correr", "Você deve trabalhar"},
						Answer:  "Você deve descansar e tomar água",
					},
				},
			},
		},
		curriculum.LevelAdvanced: {
			{
				ID:          "es-adv-1",
				Title:       "Negócios",
				Icon:        "💼",
				Description: "Converse em reuniões formais.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Vamos analisar os resultados'.",
						Options: []string{"Vamos analizar los resultados.", "Vamos cerrar el trato.", "Vamos cancelar la reunión."},
						Answer:  "Vamos analizar los resultados.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Se concordarmos, assinaremos hoje.",
						Words:  []string{"hoy", "firmaremos", "Si", "estamos", "de", "acuerdo", ","},
						Order:  []string{"Si", "estamos", "de", "acuerdo", ",", "firmaremos", "hoy"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Melhor frase para encerrar um e-mail?",
						Options: []string{"Quedo atento a sus comentarios.", "No responda este correo.", "No me llames más."},
						Answer:  "Quedo atento a sus comentarios.",
					},
				},
			},
			{
				ID:          "es-adv-2",
				Title:       "Presentaciones",
				Icon:        "📊",
				Description: "Estruture apresentações formais.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como introduzir um slide?",
						Options: []string{"Como pueden ver en esta diapositiva...", "Mira isso.", "Esto es algo."},
						Answer:  "Como pueden ver en esta diapositiva...",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Vamos passar ao próximo tema.",
						Words:  []string{"al", "tema", "pasar", "Vamos", "siguiente"},
						Order:  []string{"Vamos", "pasar", "al", "siguiente", "tema"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Mantengamos este punto breve'.",
						Options: []string{"Mantenhamos este ponto breve.", "Vamos pular este ponto.", "Vamos alongar este ponto."},
						Answer:  "Mantenhamos este ponto breve.",
					},
				},
			},
			{
				ID:          "es-adv-3",
				Title:       "Negociación",
				Icon:        "🤝",
				Description: "Negocie prazos e condições.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como pedir extensão de prazo?",
						Options: []string{"¿Podemos extender el plazo una semana?", "Dame mais tempo.", "No quero prazo."},
						Answer:  "¿Podemos extender el plazo una semana?",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Podemos revisar o desconto amanhã.",
						Words:  []string{"revisar", "Podemos", "descuento", "mañana", "el"},
						Order:  []string{"Podemos", "revisar", "el", "descuento", "mañana"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Melhor frase para encerrar negociação:",
						Options: []string{"Volvamos a hablar mañana con más datos.", "Acabou. Tchau.", "Nunca mais fale comigo."},
						Answer:  "Volvamos a hablar mañana con más datos.",
					},
				},
			},
			{
				ID:          "es-adv-4",
				Title:       "Feedback",
				Icon:        "📝",
				Description: "Dê devolutivas construtivas.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como suavizar uma crítica?",
						Options: []string{"Un área que podemos mejorar es...", "Esto está muy mal.", "No sirves."},
						Answer:  "Un área que podemos mejorar es...",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Obrigado pelo feedback detalhado.",
						Words:  []string{"Gracias", "detalle", "el", "feedback", "por"},
						Order:  []string{"Gracias", "por", "el", "feedback", "detalle"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza '¿Podrías profundizar en ese punto?'.",
						Options: []string{"Você poderia detalhar esse ponto?", "Você pode parar de falar?", "Você pode gritar?"},
						Answer:  "Você poderia detalhar esse ponto?",
					},
				},
			},
			{
				ID:          "es-adv-5",
				Title:       "Entrevista",
				Icon:        "🎤",
				Description: "Responda perguntas de forma estruturada.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como iniciar resposta STAR?",
						Options: []string{"En esa situación, mi tarea era...", "No recuerdo.", "No importa."},
						Answer:  "En esa situación, mi tarea era...",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: O resultado foi reduzir custos em 15%.",
						Words:  []string{"resultado", "El", "fue", "en", "15%", "costos", "reducir"},
						Order:  []string{"El", "resultado", "fue", "reducir", "costos", "en", "15%"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Melhor forma de falar sobre erro:",
						Options: []string{"Aprendí de ese error y mejoré mi proceso.", "No fue culpa minha.", "Nunca erro."},
						Answer:  "Aprendí de ese error y mejoré mi proceso.",
					},
				},
			},
			{
				ID:          "es-adv-6",
				Title:       "Redacción formal",
				Icon:        "✉️",
				Description: "Escreva e-mails formais e resumos.",
				Exercises: []exercise.Exercise{
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Como pedir confirmação de recebimento?",
						Options: []string{"Por favor, confirma de recibido.", "Recebeste?", "Manda aí."},
						Answer:  "Por favor, confirma de recibido.",
					},
					{
						Kind:   exercise.KindArrange,
						Prompt: "Monte: Anexo o relatório solicitado.",
						Words:  []string{"solicitado", "Adjunto", "reporte", "el"},
						Order:  []string{"Adjunto", "el", "reporte", "solicitado"},
					},
					{
						Kind:    exercise.KindSelect,
						Prompt:  "Traduza 'Quedo atento a tu respuesta'.",
						Options: []string{"Fico atento à sua resposta", "Fico atento ao seu pagamento", "Não responderei"},
						Answer:  "Fico atento à sua resposta",
					},
				},
			},
		},
	}
}
