package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregator_Record(t *testing.T) {
	agg := NewAggregator()

	agg.Record(Event{User: "alice", IP: "10.0.0.1"})
	agg.Record(Event{User: "alice", IP: "10.0.0.2"})
	agg.Record(Event{User: "bob"})
	agg.Record(Event{IP: "10.0.0.1"})
	agg.Record(Event{})

	r := agg.Result()
	assert.Equal(t, 5, r.TotalFailedLogins)
	assert.Equal(t, map[string]int{"alice": 2, "bob": 1}, r.FailedByUser)
	assert.Equal(t, map[string]int{"10.0.0.1": 2, "10.0.0.2": 1}, r.FailedByIP)
}

func TestAggregator_ResultHandsOff(t *testing.T) {
	agg := NewAggregator()
	agg.Record(Event{User: "alice", IP: "10.0.0.1"})

	first := agg.Result()
	agg.Record(Event{User: "alice", IP: "10.0.0.1"})

	assert.Equal(t, 1, first.TotalFailedLogins, "handed-off result must not change")
	assert.Equal(t, 1, first.FailedByUser["alice"])

	second := agg.Result()
	assert.Equal(t, 1, second.TotalFailedLogins)
}

func TestEventFieldPresence(t *testing.T) {
	assert.False(t, Event{}.HasUser())
	assert.False(t, Event{}.HasIP())
	assert.True(t, Event{User: "u"}.HasUser())
	assert.True(t, Event{IP: "i"}.HasIP())
}
