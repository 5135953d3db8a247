package helper

import (
	"fmt"
	"santaratrip/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func uniqueSlug(tx *gorm.DB, tableModel any, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(tableModel).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

func GenerateUniqueDestinationSlug(tx *gorm.DB, name string) string {
	return uniqueSlug(tx, &model.Destination{}, name)
}

func GenerateUniqueHotelSlug(tx *gorm.DB, name string) string {
	return uniqueSlug(tx, &model.Hotel{}, name)
}

func GenerateUniqueEventSlug(tx *gorm.DB, name string) string {
	return uniqueSlug(tx, &model.Event{}, name)
}
