package broadcast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendDeliversToAllInOrder(t *testing.T) {
	var got []int64
	res := Send([]int64{3, 1, 2}, "hi", func(id int64, text string) error {
		assert.Equal(t, "hi", text)
		got = append(got, id)
		return nil
	}, Options{})

	assert.Equal(t, []int64{3, 1, 2}, got)
	assert.Equal(t, Result{Success: 3, Failed: 0}, res)
}

func TestSendCountsFailuresAndContinues(t *testing.T) {
	blocked := errors.New("forbidden: bot was blocked by the user")
	res := Send([]int64{1, 2, 3, 4}, "hi", func(id int64, _ string) error {
		if id%2 == 0 {
			return blocked
		}
		return nil
	}, Options{})

	assert.Equal(t, 2, res.Success)
	assert.Equal(t, 2, res.Failed)
}

func TestSendConservation(t *testing.T) {
	ids := []int64{1, 2, 3, 4, 5}
	res := Send(ids, "x", func(id int64, _ string) error {
		if id == 3 {
			return errors.New("gone")
		}
		return nil
	}, Options{})
	assert.Equal(t, len(ids), res.Success+res.Failed)
}

func TestSendOnSentOnlyForSuccesses(t *testing.T) {
	var sent []int64
	Send([]int64{1, 2}, "x", func(id int64, _ string) error {
		if id == 2 {
			return errors.New("gone")
		}
		return nil
	}, Options{OnSent: func(id int64) { sent = append(sent, id) }})

	assert.Equal(t, []int64{1}, sent)
}

func TestSendEmptyRecipients(t *testing.T) {
	called := false
	res := Send(nil, "x", func(int64, string) error {
		called = true
		return nil
	}, Options{})
	assert.False(t, called)
	assert.Equal(t, Result{}, res)
}
