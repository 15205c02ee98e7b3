package classifier

import (
	"strings"

	"github.com/shenikar/traffic_overlay/internal/models"
)

type synonymEntry struct {
	tag   models.TypeTag
	words []string
}

// synonyms - порядок записей определяет приоритет при совпадении
var synonyms = []synonymEntry{
	{models.TypeAccident, []string{"accident", "crash", "collision", "wreck"}},
	{models.TypeTrafficJam, []string{"traffic jam", "congestion", "slow traffic", "jammed"}},
	{models.TypeRoadBlock, []string{"road block", "barricade", "closed road", "obstruction"}},
	{models.TypeConstruction, []string{"construction", "road work", "repairs", "maintenance"}},
}

// Classify определяет категорию сообщения.
// Точное совпадение заявленного типа с именем категории из таблицы имеет приоритет,
// иначе ищется первый синоним, входящий в описание (без учета регистра).
// Заявленный тип Other на результат не влияет.
func Classify(declared, description string) models.TypeTag {
	if t, err := models.ParseTypeTag(declared); err == nil && t != models.TypeOther {
		return t
	}

	text := strings.ToLower(description)
	for _, entry := range synonyms {
		for _, w := range entry.words {
			if strings.Contains(text, w) {
				return entry.tag
			}
		}
	}
	return models.TypeOther
}

// Synonyms возвращает копию таблицы синонимов для категории
func Synonyms(tag models.TypeTag) []string {
	for _, entry := range synonyms {
		if entry.tag == tag {
			out := make([]string, len(entry.words))
			copy(out, entry.words)
			return out
		}
	}
	return nil
}
