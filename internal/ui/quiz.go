package ui

import (
	"fmt"
	"math/rand"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"atlascope/internal/country"
)

// quizLength is how many questions one round asks.
const quizLength = 8

// question is one multiple-choice geography question.
type question struct {
	prompt  string
	options []string
	answer  int // index into options
}

// quizModel is a small geography quiz generated from the fetched dataset.
type quizModel struct {
	rng       *rand.Rand
	questions []question
	index     int
	score     int
	answered  bool
	choice    int
	done      bool
}

func newQuiz() quizModel {
	return quizModel{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// generate builds a fresh round from the dataset. Countries without the
// fields a question needs are skipped.
func (m *quizModel) generate(countries []country.Country) {
	m.questions = nil
	m.index = 0
	m.score = 0
	m.answered = false
	m.done = false

	pool := make([]country.Country, 0, len(countries))
	for _, c := range countries {
		if c.Name.Common != "" && c.Population > 0 && len(c.Capital) > 0 {
			pool = append(pool, c)
		}
	}
	if len(pool) < 4 {
		return
	}

	for len(m.questions) < quizLength {
		switch m.rng.Intn(3) {
		case 0:
			m.questions = append(m.questions, m.pairQuestion(pool, "population"))
		case 1:
			m.questions = append(m.questions, m.pairQuestion(pool, "area"))
		default:
			m.questions = append(m.questions, m.capitalQuestion(pool))
		}
	}
}

// pairQuestion asks which of two countries has the larger metric.
func (m *quizModel) pairQuestion(pool []country.Country, metric string) question {
	a := pool[m.rng.Intn(len(pool))]
	b := pool[m.rng.Intn(len(pool))]
	for b.Code == a.Code {
		b = pool[m.rng.Intn(len(pool))]
	}

	var prompt string
	var answer int
	switch metric {
	case "area":
		prompt = "Which country has the larger area?"
		if b.Area > a.Area {
			answer = 1
		}
	default:
		prompt = "Which country has the larger population?"
		if b.Population > a.Population {
			answer = 1
		}
	}

	return question{
		prompt:  prompt,
		options: []string{a.Name.Common, b.Name.Common},
		answer:  answer,
	}
}

// capitalQuestion asks for the capital of a country among three options.
func (m *quizModel) capitalQuestion(pool []country.Country) question {
	c := pool[m.rng.Intn(len(pool))]

	options := []string{c.Capital[0]}
	for attempts := 0; len(options) < 3 && attempts < 50; attempts++ {
		other := pool[m.rng.Intn(len(pool))]
		if other.Code == c.Code || contains(options, other.Capital[0]) {
			continue
		}
		options = append(options, other.Capital[0])
	}

	answer := m.rng.Intn(len(options))
	options[0], options[answer] = options[answer], options[0]

	return question{
		prompt:  fmt.Sprintf("What is the capital of %s?", c.Name.Common),
		options: options,
		answer:  answer,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (m quizModel) Update(msg tea.Msg, countries []country.Country) (quizModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "1", "2", "3":
		if m.done || m.answered || len(m.questions) == 0 {
			return m, nil
		}
		choice := int(key.String()[0] - '1')
		if choice >= len(m.questions[m.index].options) {
			return m, nil
		}
		m.choice = choice
		m.answered = true
		if choice == m.questions[m.index].answer {
			m.score++
		}
		return m, nil

	case "n", "enter":
		if !m.answered {
			return m, nil
		}
		if m.index+1 >= len(m.questions) {
			m.done = true
			return m, nil
		}
		m.index++
		m.answered = false
		return m, nil

	case "R":
		m.generate(countries)
		return m, nil
	}

	return m, nil
}

func (m quizModel) View() string {
	if len(m.questions) == 0 {
		return mutedStyle.Render("The quiz needs the country dataset — load it first.") + "\n"
	}

	if m.done {
		return fmt.Sprintf("Round over: %s\n\n%s\n",
			quizCorrect.Render(fmt.Sprintf("%d / %d correct", m.score, len(m.questions))),
			mutedStyle.Render("Press R for another round."))
	}

	q := m.questions[m.index]

	var b strings.Builder
	b.WriteString(statusText.Render(fmt.Sprintf("Question %d of %d · score %d",
		m.index+1, len(m.questions), m.score)))
	b.WriteString("\n\n")
	b.WriteString(q.prompt)
	b.WriteString("\n\n")

	for i, opt := range q.options {
		line := fmt.Sprintf("  %d. %s", i+1, opt)
		if m.answered {
			switch i {
			case q.answer:
				line = quizCorrect.Render(line + "  ✓")
			case m.choice:
				line = quizWrong.Render(line + "  ✗")
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.answered {
		b.WriteString(mutedStyle.Render("Press n for the next question."))
	} else {
		b.WriteString(mutedStyle.Render("Answer with 1-3."))
	}
	b.WriteString("\n")

	return b.String()
}
