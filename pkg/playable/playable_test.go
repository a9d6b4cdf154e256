package playable

import (
	"blackjack-server/pkg/deck"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
	"time"
)

func TestSimpleLogMessage(t *testing.T) {
	before := time.Now()
	lm := SimpleLogMessage(nil, "test %d", 5)
	assert.Equal(t, "test 5", lm.Message)
	assert.Len(t, lm.UUID, 36)
	assert.False(t, lm.Time.Before(before))
	assert.False(t, time.Now().Before(lm.Time))
	assert.Nil(t, lm.Cards)
}

func TestSimpleLogMessage_withCards(t *testing.T) {
	cards := deck.CardsFromString("14s,13h")
	lm := SimpleLogMessage(cards, "dealt %s", "cards")
	assert.Equal(t, "dealt cards", lm.Message)
	assert.Equal(t, cards, lm.Cards)
}

func TestOK(t *testing.T) {
	a := assert.New(t)
	res := OK()
	a.Equal("status", res.Key)
	a.Equal("OK", res.Value)
	a.Equal("", res.Context)

	a.Equal("abc", OK("abc").Context)
}

func TestAdditionalData(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	a.NoError(json.Unmarshal([]byte(`{"bet":50,"name":"x","flag":true}`), &data))

	i, ok := data.GetInt("bet")
	a.True(ok)
	a.Equal(50, i)

	_, ok = data.GetInt("name")
	a.False(ok)

	_, ok = data.GetInt("flag")
	a.False(ok)

	_, ok = data.GetInt("missing")
	a.False(ok)

	i, ok = AdditionalData{"amount": 100}.GetInt("amount")
	a.True(ok)
	a.Equal(100, i)
}

func TestAdditionalData_GetIntRejectsFractions(t *testing.T) {
	a := assert.New(t)

	var data AdditionalData
	a.NoError(json.Unmarshal([]byte(`{"bet":50.9,"amount":10.5,"neg":-3,"huge":1e30}`), &data))

	_, ok := data.GetInt("bet")
	a.False(ok)

	_, ok = data.GetInt("amount")
	a.False(ok)

	_, ok = data.GetInt("huge")
	a.False(ok)

	_, ok = AdditionalData{"nan": math.NaN()}.GetInt("nan")
	a.False(ok)

	i, ok := data.GetInt("neg")
	a.True(ok)
	a.Equal(-3, i)
}
