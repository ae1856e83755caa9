package games

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
)

// ErrQuestionNotFound is returned for an unknown question ID.
var ErrQuestionNotFound = errors.New("question not found")

// ErrInvalidChoice is returned for a vote that is neither "a" nor "b".
var ErrInvalidChoice = errors.New("choice must be a or b")

// Question is one either-or dilemma.
type Question struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	OptionA  string `json:"optionA"`
	OptionB  string `json:"optionB"`
}

// Tally is the vote count of a question.
type Tally struct {
	QuestionID string  `json:"questionId"`
	A          int     `json:"a"`
	B          int     `json:"b"`
	PercentA   float64 `json:"percentA"`
	PercentB   float64 `json:"percentB"`
}

var questions = []Question{
	{ID: "q1", Category: "일상", OptionA: "평생 여름만 살기", OptionB: "평생 겨울만 살기"},
	{ID: "q2", Category: "일상", OptionA: "매일 아침 5시 기상", OptionB: "매일 새벽 3시 취침"},
	{ID: "q3", Category: "음식", OptionA: "평생 라면 금지", OptionB: "평생 치킨 금지"},
	{ID: "q4", Category: "음식", OptionA: "민트초코 무한리필", OptionB: "하와이안 피자 무한리필"},
	{ID: "q5", Category: "연애", OptionA: "연락 자주 하는 애인", OptionB: "연락 거의 없는 애인"},
	{ID: "q6", Category: "연애", OptionA: "깻잎 떼어주는 애인", OptionB: "새우 까주는 애인"},
	{ID: "q7", Category: "직장", OptionA: "월급 500에 주 6일", OptionB: "월급 300에 주 4일"},
	{ID: "q8", Category: "직장", OptionA: "칼퇴하는 팀장", OptionB: "일 잘하는 팀장"},
	{ID: "q9", Category: "초능력", OptionA: "순간이동", OptionB: "투명인간"},
	{ID: "q10", Category: "초능력", OptionA: "과거로 가기", OptionB: "미래로 가기"},
}

// Questions returns the catalogue, optionally limited to one category.
func Questions(category string) []Question {
	var out []Question
	for _, q := range questions {
		if category == "" || q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// Balance serves random questions and keeps vote tallies in memory.
type Balance struct {
	mu    sync.Mutex
	rng   *rand.Rand
	votes map[string][2]int
}

// NewBalance creates a balance game drawing from rng.
func NewBalance(rng *rand.Rand) *Balance {
	return &Balance{rng: rng, votes: make(map[string][2]int)}
}

// Random returns a random question, optionally from one category.
func (b *Balance) Random(category string) (Question, error) {
	pool := Questions(category)
	if len(pool) == 0 {
		return Question{}, fmt.Errorf("%w: no questions in category %q", ErrQuestionNotFound, category)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return pool[b.rng.Intn(len(pool))], nil
}

// Vote records a choice and returns the updated tally.
func (b *Balance) Vote(questionID, choice string) (Tally, error) {
	if !questionExists(questionID) {
		return Tally{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	v := b.votes[questionID]
	switch choice {
	case "a", "A":
		v[0]++
	case "b", "B":
		v[1]++
	default:
		return Tally{}, ErrInvalidChoice
	}
	b.votes[questionID] = v
	return tally(questionID, v), nil
}

// Tally returns the current counts for a question.
func (b *Balance) Tally(questionID string) (Tally, error) {
	if !questionExists(questionID) {
		return Tally{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return tally(questionID, b.votes[questionID]), nil
}

func questionExists(id string) bool {
	for _, q := range questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

// tally rounds A to one decimal and gives B the remainder so the two sum to 100.
func tally(id string, v [2]int) Tally {
	t := Tally{QuestionID: id, A: v[0], B: v[1]}
	if total := v[0] + v[1]; total > 0 {
		t.PercentA = math.Round(float64(v[0])/float64(total)*1000) / 10
		t.PercentB = math.Round((100-t.PercentA)*10) / 10
	}
	return t
}
