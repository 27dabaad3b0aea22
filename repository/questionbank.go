// repository/questionbank.go - Curated question bank
//
// The canonical content of the four training phases, 15 questions each.
// Rewritten into the store on every startup by ReseedCanonicalContent.
package repository

import "quizmaster/models"

// canonicalQuestions returns a fresh copy of the curated bank so
// callers can never mutate the seed data in place.
func canonicalQuestions() []models.Question {
	questions := make([]models.Question, len(questionBank))
	copy(questions, questionBank)
	return questions
}

var questionBank = []models.Question{
	// Fase 1: Fácil
	{ID: "f1-q1", Phase: 1, Difficulty: "Fácil", Text: "Qual a quantidade exata de alface no McChicken?", Options: []string{"28 gramas", "20 gramas", "30 gramas", "15 gramas"}, CorrectIndex: 0},
	{ID: "f1-q2", Phase: 1, Difficulty: "Fácil", Text: "Com qual frequência mínima os funcionários devem lavar as mãos?", Options: []string{"De 1 em 1 hora", "De 2 em 2 horas", "Apenas quando trocar de posto", "Sempre que o gerente pedir"}, CorrectIndex: 0},
	{ID: "f1-q3", Phase: 1, Difficulty: "Fácil", Text: "Qual o peso do produto final de uma casquinha?", Options: []string{"99 gramas", "110 gramas", "90 gramas", "105 gramas"}, CorrectIndex: 0},
	{ID: "f1-q4", Phase: 1, Difficulty: "Fácil", Text: "A pessoa da lixeira pode limpar bandejas na visão do cliente no salão?", Options: []string{"Nunca", "Somente em baixo movimento", "Sim, se estiver usando luvas", "Sim, é o procedimento padrão"}, CorrectIndex: 0},
	{ID: "f1-q5", Phase: 1, Difficulty: "Fácil", Text: "Qual a quantidade de gelo para as bebidas Pequena, Média e Grande?", Options: []string{"5, 10 e 15 unidades", "3, 6 e 9 unidades", "Gelo até a metade do copo", "10 unidades para todas"}, CorrectIndex: 0},
	{ID: "f1-q6", Phase: 1, Difficulty: "Fácil", Text: "Quantas carnes de McChicken cabem em uma única gaveta?", Options: []string{"6 carnes", "4 carnes", "8 carnes", "10 carnes"}, CorrectIndex: 0},
	{ID: "f1-q7", Phase: 1, Difficulty: "Fácil", Text: "Qual a quantidade de cobertura no McColosso?", Options: []string{"1 tiro de ½", "1 tiro completo", "2 tiros de ½", "Apenas cobertura no fundo"}, CorrectIndex: 0},
	{ID: "f1-q8", Phase: 1, Difficulty: "Fácil", Text: "Qual a quantidade máxima de carnes 10:1 que devemos ativar por vez?", Options: []string{"8 unidades", "6 unidades", "12 unidades", "4 unidades"}, CorrectIndex: 0},
	{ID: "f1-q9", Phase: 1, Difficulty: "Fácil", Text: "Qual a frequência de lavagem dos utensílios da cozinha?", Options: []string{"De 4 em 4 horas", "Uma vez por turno", "De 2 em 2 horas", "Apenas no fechamento"}, CorrectIndex: 0},
	{ID: "f1-q10", Phase: 1, Difficulty: "Fácil", Text: "Para maior rapidez, como o funcionário do caixa deve digitar?", Options: []string{"Com as duas mãos", "Usando apenas o teclado numérico", "Com uma mão enquanto organiza sacos", "Apenas com a mão dominante"}, CorrectIndex: 0},
	{ID: "f1-q11", Phase: 1, Difficulty: "Fácil", Text: "Quem é o responsável por limpar os vidros no salão?", Options: []string{"A pessoa do salão", "A pessoa da lixeira", "O gerente de plantão", "Empresa externa"}, CorrectIndex: 0},
	{ID: "f1-q12", Phase: 1, Difficulty: "Fácil", Text: "Qual a coloração correta de uma McFrita padrão ouro?", Options: []string{"Marrom-dourada clara e leve brilho", "Amarela pálida", "Dourada escura e crocante", "Branca e macia"}, CorrectIndex: 0},
	{ID: "f1-q13", Phase: 1, Difficulty: "Fácil", Text: "O que define o 'Momento do Cliente'?", Options: []string{"Desde a entrada até a saída do restaurante", "Apenas o tempo que ele passa no caixa", "O tempo de espera pelo lanche", "A experiência dentro do salão"}, CorrectIndex: 0},
	{ID: "f1-q14", Phase: 1, Difficulty: "Fácil", Text: "Como deve ser a massa das tortas fritas padrão ouro?", Options: []string{"Marrom-dourada, crocante e com bolhas", "Lisa e macia", "Branca e firme", "Escura e sem bolhas"}, CorrectIndex: 0},
	{ID: "f1-q15", Phase: 1, Difficulty: "Fácil", Text: "O que acontece se os pães ficarem descobertos?", Options: []string{"Eles ficarão muito secos", "Eles ficarão mais macios", "Não altera a qualidade", "Eles esfriam mais rápido"}, CorrectIndex: 0},

	// Fase 2: Médio
	{ID: "f2-q1", Phase: 2, Difficulty: "Médio", Text: "Qual a temperatura correta das câmaras resfriadas?", Options: []string{"1°C a 4°C", "5°C a 10°C", "-2°C a 2°C", "0°C a 8°C"}, CorrectIndex: 0},
	{ID: "f2-q2", Phase: 2, Difficulty: "Médio", Text: "Qual a temperatura das câmaras congeladas?", Options: []string{"-23°C a -18°C", "-10°C a -5°C", "-30°C a -25°C", "-15°C a -10°C"}, CorrectIndex: 0},
	{ID: "f2-q3", Phase: 2, Difficulty: "Médio", Text: "Qual a temperatura da estufa de McFritas e seu tempo de vida?", Options: []string{"168°C e 7 minutos", "150°C e 10 minutos", "180°C e 5 minutos", "160°C e 12 minutos"}, CorrectIndex: 0},
	{ID: "f2-q4", Phase: 2, Difficulty: "Médio", Text: "Qual o empilhamento máximo de pães de Big Mac?", Options: []string{"26 unidades", "20 unidades", "30 unidades", "15 unidades"}, CorrectIndex: 0},
	{ID: "f2-q5", Phase: 2, Difficulty: "Médio", Text: "Qual o tempo de vida do pão fresco?", Options: []string{"6 dias", "4 dias", "10 dias", "3 dias"}, CorrectIndex: 0},
	{ID: "f2-q6", Phase: 2, Difficulty: "Médio", Text: "Qual a temperatura interna mínima das carnes 10:1 após cozidas?", Options: []string{"69°C", "60°C", "75°C", "65°C"}, CorrectIndex: 0},
	{ID: "f2-q7", Phase: 2, Difficulty: "Médio", Text: "Qual o tempo de resfriamento das tortas e ativação máxima?", Options: []string{"20 min / 16 tortas", "15 min / 12 tortas", "30 min / 20 tortas", "10 min / 8 tortas"}, CorrectIndex: 0},
	{ID: "f2-q8", Phase: 2, Difficulty: "Médio", Text: "Qual o empilhamento máximo de bags de Coca-Cola Zero?", Options: []string{"4 caixas", "2 caixas", "6 caixas", "3 caixas"}, CorrectIndex: 0},
	{ID: "f2-q9", Phase: 2, Difficulty: "Médio", Text: "Qual o tempo de fritura das McFritas?", Options: []string{"3 minutos e 10 segundos", "2 minutos e 30 segundos", "4 minutos", "3 minutos e 45 segundos"}, CorrectIndex: 0},
	{ID: "f2-q10", Phase: 2, Difficulty: "Médio", Text: "Qual o tempo de vida das McFritas congeladas?", Options: []string{"275 dias", "180 dias", "365 dias", "120 dias"}, CorrectIndex: 0},
	{ID: "f2-q11", Phase: 2, Difficulty: "Médio", Text: "O que indica que a gordura está velha?", Options: []string{"Cor escura e fumaça", "Cor clara e sem cheiro", "Muitas bolhas na fritura", "Fica mais rala"}, CorrectIndex: 0},
	{ID: "f2-q12", Phase: 2, Difficulty: "Médio", Text: "Qual o tempo de vida secundário das tortas na estufa?", Options: []string{"90 minutos", "60 minutos", "120 minutos", "45 minutos"}, CorrectIndex: 0},
	{ID: "f2-q13", Phase: 2, Difficulty: "Médio", Text: "Qual o tempo de cozimento das carnes 4:1?", Options: []string{"A partir de 104 segundos", "90 segundos", "120 segundos", "80 segundos"}, CorrectIndex: 0},
	{ID: "f2-q14", Phase: 2, Difficulty: "Médio", Text: "Qual a capacidade de McNuggets em uma gaveta?", Options: []string{"24 nuggets", "20 nuggets", "30 nuggets", "12 nuggets"}, CorrectIndex: 0},
	{ID: "f2-q15", Phase: 2, Difficulty: "Médio", Text: "Qual o tempo de vida primário do queijo fatiado?", Options: []string{"120 dias", "90 dias", "180 dias", "60 dias"}, CorrectIndex: 0},

	// Fase 3: Difícil
	{ID: "f3-q1", Phase: 3, Difficulty: "Difícil", Text: "Qual a calibragem correta do molho Big Mac?", Options: []string{"6 tiros = 59 ml", "5 tiros = 50 ml", "6 tiros = 70 ml", "4 tiros = 45 ml"}, CorrectIndex: 0},
	{ID: "f3-q2", Phase: 3, Difficulty: "Difícil", Text: "Qual a calibragem da mostarda pouch?", Options: []string{"35 a 60 tiros = 30 ml", "20 a 40 tiros = 25 ml", "50 a 80 tiros = 40 ml", "30 tiros = 30 ml"}, CorrectIndex: 0},
	{ID: "f3-q3", Phase: 3, Difficulty: "Difícil", Text: "Qual a quantidade de cebola no sanduíche Cheddar?", Options: []string{"7 gramas", "5 gramas", "10 gramas", "3 gramas"}, CorrectIndex: 0},
	{ID: "f3-q4", Phase: 3, Difficulty: "Difícil", Text: "Qual o rendimento ideal das McFritas (porções P por kg)?", Options: []string{"9,11", "9,12", "8,11", "9,14"}, CorrectIndex: 0},
	{ID: "f3-q5", Phase: 3, Difficulty: "Difícil", Text: "Qual a temperatura correta do Banho-Maria?", Options: []string{"57°C a 63°C", "45°C a 55°C", "65°C a 75°C", "50°C a 60°C"}, CorrectIndex: 0},
	{ID: "f3-q6", Phase: 3, Difficulty: "Difícil", Text: "Qual a temperatura interna mínima dos produtos na UHC?", Options: []string{"60°C", "69°C", "55°C", "70°C"}, CorrectIndex: 0},
	{ID: "f3-q7", Phase: 3, Difficulty: "Difícil", Text: "Qual pegador deve ser usado para carnes brancas após o cozimento?", Options: []string{"Pegador Verde", "Pegador Amarelo", "Pegador Azul", "Pegador Vermelho"}, CorrectIndex: 0},
	{ID: "f3-q8", Phase: 3, Difficulty: "Difícil", Text: "Qual a quantidade de mostarda por tiro nos sanduíches?", Options: []string{"1/40 oz", "1/20 oz", "1/50 oz", "1/30 oz"}, CorrectIndex: 0},
	{ID: "f3-q9", Phase: 3, Difficulty: "Difícil", Text: "Qual a causa de uma carne mole e gordurosa?", Options: []string{"Ajuste incorreto da chapa", "Carne descongelada", "Pouco tempo de chapa", "Chapa muito quente"}, CorrectIndex: 0},
	{ID: "f3-q10", Phase: 3, Difficulty: "Difícil", Text: "Qual a proporção xarope/água da Fanta Laranja?", Options: []string{"4.2 oz água / 1.0 oz xarope", "5.0 oz água / 1.0 oz xarope", "4.0 oz água / 1.2 oz xarope", "3.8 oz água / 1.0 oz xarope"}, CorrectIndex: 0},
	{ID: "f3-q11", Phase: 3, Difficulty: "Difícil", Text: "Qual o tempo de vida secundário do molho Big Mac (deslacrado)?", Options: []string{"24 horas", "12 horas", "48 horas", "8 horas"}, CorrectIndex: 0},
	{ID: "f3-q12", Phase: 3, Difficulty: "Difícil", Text: "O que define contaminação cruzada?", Options: []string{"Transferência de bactérias de cru para cozido", "Usar o mesmo saco para dois lanches", "Lanche fora do tempo de vida", "Misturar dois tipos de pão"}, CorrectIndex: 0},
	{ID: "f3-q13", Phase: 3, Difficulty: "Difícil", Text: "Qual o peso das McFritas Kids, Pequena, Média e Grande?", Options: []string{"31g, 73g, 102g e 146g", "30g, 70g, 100g e 150g", "25g, 60g, 90g e 130g", "31g, 80g, 110g e 160g"}, CorrectIndex: 0},
	{ID: "f3-q14", Phase: 3, Difficulty: "Difícil", Text: "Qual o peso de um Biju por unidade?", Options: []string{"5,4 gramas", "6,0 gramas", "4,5 gramas", "5,0 gramas"}, CorrectIndex: 0},
	{ID: "f3-q15", Phase: 3, Difficulty: "Difícil", Text: "Qual o tempo máximo do EOPE no Drive?", Options: []string{"120 segundos", "180 segundos", "90 segundos", "150 segundos"}, CorrectIndex: 0},

	// Fase 4: Expert
	{ID: "f4-q1", Phase: 4, Difficulty: "Expert", Text: "Qual o rendimento total de uma Mostarda Pouch?", Options: []string{"1235 unidades", "1000 unidades", "1500 unidades", "1100 unidades"}, CorrectIndex: 0},
	{ID: "f4-q2", Phase: 4, Difficulty: "Expert", Text: "Qual a temperatura da Tostadeira Rápida (Principal/Auxiliar)?", Options: []string{"293°C / 204°C", "250°C / 180°C", "300°C / 250°C", "280°C / 200°C"}, CorrectIndex: 0},
	{ID: "f4-q3", Phase: 4, Difficulty: "Expert", Text: "A UHC deve ser aquecida a que temperatura e por quanto tempo?", Options: []string{"85°C por 20 minutos", "90°C por 15 minutos", "80°C por 30 minutos", "75°C por 10 minutos"}, CorrectIndex: 0},
	{ID: "f4-q4", Phase: 4, Difficulty: "Expert", Text: "Qual o tempo de vida primário do Ketchup Pouch?", Options: []string{"180 dias", "120 dias", "240 dias", "365 dias"}, CorrectIndex: 0},
	{ID: "f4-q5", Phase: 4, Difficulty: "Expert", Text: "Qual o tempo de vida secundário do suco no reservatório?", Options: []string{"7 dias", "5 dias", "10 dias", "3 dias"}, CorrectIndex: 0},
	{ID: "f4-q6", Phase: 4, Difficulty: "Expert", Text: "Qual a capacidade máxima de itens no Saco C?", Options: []string{"7 a 9 itens", "5 a 7 itens", "10 a 12 itens", "6 a 8 itens"}, CorrectIndex: 0},
	{ID: "f4-q7", Phase: 4, Difficulty: "Expert", Text: "Qual o tempo de vida secundário do pão congelado (incluindo desgelo)?", Options: []string{"48 horas", "24 horas", "72 horas", "36 horas"}, CorrectIndex: 0},
	{ID: "f4-q8", Phase: 4, Difficulty: "Expert", Text: "Quanto tempo a tostadeira rápida deve ser pré-aquecida?", Options: []string{"15 minutos", "10 minutos", "20 minutos", "5 minutos"}, CorrectIndex: 0},
	{ID: "f4-q9", Phase: 4, Difficulty: "Expert", Text: "Qual a temperatura do mix de sundae no reservatório?", Options: []string{"1°C a 4°C", "5°C a 8°C", "-2°C a 2°C", "0°C a 5°C"}, CorrectIndex: 0},
	{ID: "f4-q10", Phase: 4, Difficulty: "Expert", Text: "Qual o ciclo exato de caramelização dos pães?", Options: []string{"22 segundos", "15 segundos", "30 segundos", "18 segundos"}, CorrectIndex: 0},
	{ID: "f4-q11", Phase: 4, Difficulty: "Expert", Text: "Qual o tempo de ambientação do molho Cheddar?", Options: []string{"2 horas", "1 hora", "3 horas", "4 horas"}, CorrectIndex: 0},
	{ID: "f4-q12", Phase: 4, Difficulty: "Expert", Text: "Qual a temperatura interna mínima de cocção geral das carnes?", Options: []string{"69°C", "74°C", "65°C", "70°C"}, CorrectIndex: 0},
	{ID: "f4-q13", Phase: 4, Difficulty: "Expert", Text: "Qual o tempo de vida dos molhos de Nuggets?", Options: []string{"120 dias", "180 dias", "90 dias", "240 dias"}, CorrectIndex: 0},
	{ID: "f4-q14", Phase: 4, Difficulty: "Expert", Text: "Por qual cliente o anotador deve iniciar o atendimento?", Options: []string{"Pelo 3º cliente", "Pelo 1º cliente", "Pelo 2º cliente", "Pelo último da fila"}, CorrectIndex: 0},
	{ID: "f4-q15", Phase: 4, Difficulty: "Expert", Text: "Qual a temperatura de operação das chapas (Superior/Inferior)?", Options: []string{"Sup 218°C / Inf 177°C", "Sup 200°C / Inf 150°C", "Sup 250°C / Inf 200°C", "Sup 180°C / Inf 180°C"}, CorrectIndex: 0},
}
