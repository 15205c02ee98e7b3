package classifier

import (
	"testing"

	"github.com/shenikar/traffic_overlay/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify_ExactNameShortCircuits(t *testing.T) {
	assert.Equal(t, models.TypeAccident, Classify("Accident", "unrelated text"))
	assert.Equal(t, models.TypeConstruction, Classify("Construction", "a crash near the bridge"))
	assert.Equal(t, models.TypeTrafficJam, Classify("TrafficJam", ""))
	assert.Equal(t, models.TypeRoadBlock, Classify("Road Block", "xyzzy"))
}

func TestClassify_SynonymFallback(t *testing.T) {
	cases := map[string]models.TypeTag{
		"there was a bad crash here":        models.TypeAccident,
		"Heavy CONGESTION on the ring road": models.TypeTrafficJam,
		"police barricade at the junction":  models.TypeRoadBlock,
		"night road work, one lane open":    models.TypeConstruction,
	}
	for description, want := range cases {
		assert.Equal(t, want, Classify("Other", description), description)
	}
}

func TestClassify_FirstTagInTableOrderWins(t *testing.T) {
	// "collision" (Accident) и "congestion" (Traffic Jam) - выигрывает Accident
	assert.Equal(t, models.TypeAccident, Classify("Other", "congestion after a collision"))
}

func TestClassify_NoMatch(t *testing.T) {
	assert.Equal(t, models.TypeOther, Classify("Other", "xyzzy"))
	assert.Equal(t, models.TypeOther, Classify("", ""))
	assert.Equal(t, models.TypeOther, Classify("accident", "nothing here"))
}

func TestClassify_TotalAndDeterministic(t *testing.T) {
	inputs := [][2]string{
		{"Other", "crash"}, {"weird", "road block ahead"}, {"", "maintenance"}, {"Accident", ""}, {"x", "y"},
	}
	for _, in := range inputs {
		first := Classify(in[0], in[1])
		assert.Contains(t, models.TypeTags, first)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Classify(in[0], in[1]))
		}
	}
}

func TestSynonyms_ReturnsCopy(t *testing.T) {
	words := Synonyms(models.TypeAccident)
	words[0] = "changed"
	assert.Equal(t, "accident", Synonyms(models.TypeAccident)[0])
	assert.Nil(t, Synonyms(models.TypeOther))
}
