package models

import (
	"fmt"
	"strings"
)

// TypeTag - категория сообщения о происшествии
type TypeTag string

const (
	TypeAccident     TypeTag = "Accident"
	TypeTrafficJam   TypeTag = "Traffic Jam"
	TypeRoadBlock    TypeTag = "Road Block"
	TypeConstruction TypeTag = "Construction"
	TypeOther        TypeTag = "Other"
)

// FilterAll - значение фильтра, при котором показываются все сообщения
const FilterAll = "all"

// TypeTags перечисляет все категории в порядке таблицы синонимов
var TypeTags = []TypeTag{TypeAccident, TypeTrafficJam, TypeRoadBlock, TypeConstruction, TypeOther}

var compactNames = map[string]TypeTag{
	"TrafficJam": TypeTrafficJam,
	"RoadBlock":  TypeRoadBlock,
}

// ParseTypeTag возвращает категорию по имени. Принимаются и слитные имена (TrafficJam).
func ParseTypeTag(s string) (TypeTag, error) {
	for _, t := range TypeTags {
		if string(t) == s {
			return t, nil
		}
	}
	if t, ok := compactNames[s]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

// Filter - выбранный в интерфейсе фильтр по категории
type Filter struct {
	All bool
	Tag TypeTag
}

// ParseFilter разбирает значение фильтра: "all" или имя категории
func ParseFilter(s string) (Filter, error) {
	if strings.EqualFold(s, FilterAll) {
		return Filter{All: true}, nil
	}
	t, err := ParseTypeTag(s)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Tag: t}, nil
}

func (f Filter) String() string {
	if f.All {
		return FilterAll
	}
	return string(f.Tag)
}

// Matches сообщает, проходит ли категория через фильтр
func (f Filter) Matches(t TypeTag) bool {
	return f.All || f.Tag == t
}
