package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert.Equal(t, CmdStart, Decode("/start"))
	assert.Equal(t, CmdStart, Decode("/start ref123"))
	assert.Equal(t, CmdStart, Decode("/start@coach_bot"))
	assert.Equal(t, CmdText, Decode("/starter"))
	assert.Equal(t, CmdBack, Decode(BtnBack))
	assert.Equal(t, CmdChangeGoal, Decode(BtnChangeGoal))
	assert.Equal(t, CmdShowProgress, Decode(BtnProgress))
	assert.Equal(t, CmdText, Decode("Мой прогресс"))
	assert.Equal(t, CmdText, Decode(""))
}

func TestStateStore(t *testing.T) {
	s := NewStateStore()
	assert.Equal(t, StateNone, s.Get(1))

	s.Set(1, StateAwaitingGoal)
	s.Set(2, StateAwaitingProgress)
	assert.Equal(t, StateAwaitingGoal, s.Get(1))

	s.Set(1, StateAwaitingProgress)
	assert.Equal(t, StateAwaitingProgress, s.Get(1))

	s.Set(2, StateNone)
	assert.Equal(t, StateNone, s.Get(2))

	s.Clear(1)
	assert.Equal(t, StateNone, s.Get(1))
	assert.Equal(t, "awaiting_progress", StateAwaitingProgress.String())
}
