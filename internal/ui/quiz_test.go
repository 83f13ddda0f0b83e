package ui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestQuizGenerateBuildsFullRound(t *testing.T) {
	q := quizModel{rng: rand.New(rand.NewSource(1))}
	q.generate(testDataset())

	if len(q.questions) != quizLength {
		t.Fatalf("expected %d questions, got %d", quizLength, len(q.questions))
	}
	for i, question := range q.questions {
		if question.prompt == "" {
			t.Errorf("question %d has empty prompt", i)
		}
		if len(question.options) < 2 {
			t.Errorf("question %d has %d options", i, len(question.options))
		}
		if question.answer < 0 || question.answer >= len(question.options) {
			t.Errorf("question %d answer index %d out of range", i, question.answer)
		}
	}
}

func TestQuizSkipsSmallPools(t *testing.T) {
	q := quizModel{rng: rand.New(rand.NewSource(1))}
	q.generate(testDataset()[:2])

	if len(q.questions) != 0 {
		t.Errorf("expected no questions from a pool of 2, got %d", len(q.questions))
	}
}

func TestQuizScoring(t *testing.T) {
	q := quizModel{rng: rand.New(rand.NewSource(1))}
	q.generate(testDataset())

	// Answer every question correctly.
	for i := 0; i < quizLength; i++ {
		answer := q.questions[q.index].answer
		q, _ = q.Update(key(string(rune('1'+answer))), nil)
		if !q.answered {
			t.Fatalf("question %d: expected answered state", i)
		}
		q, _ = q.Update(key("n"), nil)
	}

	if !q.done {
		t.Error("expected round to finish")
	}
	if q.score != quizLength {
		t.Errorf("expected perfect score %d, got %d", quizLength, q.score)
	}
}

func TestQuizIgnoresNextBeforeAnswer(t *testing.T) {
	q := quizModel{rng: rand.New(rand.NewSource(1))}
	q.generate(testDataset())

	q, _ = q.Update(key("n"), nil)
	if q.index != 0 {
		t.Error("next must not advance an unanswered question")
	}
	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyEnter}, nil)
	if q.index != 0 {
		t.Error("enter must not advance an unanswered question")
	}
}

func TestQuizRestart(t *testing.T) {
	q := quizModel{rng: rand.New(rand.NewSource(1))}
	q.generate(testDataset())

	q, _ = q.Update(key(string(rune('1'+q.questions[0].answer))), nil)
	q, _ = q.Update(key("R"), testDataset())

	if q.index != 0 || q.score != 0 || q.answered {
		t.Error("restart must reset round state")
	}
	if len(q.questions) != quizLength {
		t.Errorf("restart must regenerate a full round, got %d questions", len(q.questions))
	}
}
