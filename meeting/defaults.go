package meeting

import (
	"time"

	"github.com/franciscoj/podium/internal/models"
)

// builtinTemplates are seeded into the store on first run.
func builtinTemplates() []*models.Template {
	now := time.Now()

	midweek := &models.Template{
		ID:           "weekday-default",
		Name:         "Midweek Meeting (Standard)",
		Type:         models.TemplateWeekday,
		IsDefault:    true,
		LastModified: now,
		Sections: []models.Section{
			{ID: "opening-song", Name: "Opening Song", Duration: 3, Order: 1, Type: models.SectionSong, IsRequired: true},
			{ID: "opening-prayer", Name: "Opening Prayer", Duration: 2, Order: 2, Type: models.SectionPrayer, IsRequired: true},
			{ID: "treasures", Name: "Treasures From God's Word", Duration: 10, Order: 3, Type: models.SectionTalk, IsRequired: true},
			{ID: "ministry-1", Name: "Apply Yourself to the Ministry - Part 1", Duration: 4, Order: 4, Type: models.SectionDemo, IsRequired: true},
			{ID: "ministry-2", Name: "Apply Yourself to the Ministry - Part 2", Duration: 4, Order: 5, Type: models.SectionDemo, IsRequired: true},
			{ID: "ministry-3", Name: "Apply Yourself to the Ministry - Part 3", Duration: 4, Order: 6, Type: models.SectionDemo, IsRequired: true},
			{ID: "middle-song", Name: "Middle Song", Duration: 3, Order: 7, Type: models.SectionSong, IsRequired: true},
			{ID: "living-1", Name: "Living as Christians - Part 1", Duration: 15, Order: 8, Type: models.SectionStudy, IsRequired: true},
			{ID: "living-2", Name: "Living as Christians - Part 2", Duration: 30, Order: 9, Type: models.SectionStudy, IsRequired: true},
			{ID: "announcements", Name: "Announcements", Duration: 5, Order: 10, Type: models.SectionTalk, IsRequired: true},
			{ID: "closing-song", Name: "Closing Song", Duration: 3, Order: 11, Type: models.SectionSong, IsRequired: true},
			{ID: "closing-prayer", Name: "Closing Prayer", Duration: 2, Order: 12, Type: models.SectionPrayer, IsRequired: true},
		},
	}

	weekend := &models.Template{
		ID:           "weekend-default",
		Name:         "Weekend Meeting (Standard)",
		Type:         models.TemplateWeekend,
		IsDefault:    true,
		LastModified: now,
		Sections: []models.Section{
			{ID: "opening-song-we", Name: "Opening Song", Duration: 3, Order: 1, Type: models.SectionSong, IsRequired: true},
			{ID: "opening-prayer-we", Name: "Opening Prayer", Duration: 2, Order: 2, Type: models.SectionPrayer, IsRequired: true},
			{ID: "public-talk", Name: "Public Talk", Duration: 30, Order: 3, Type: models.SectionTalk, IsRequired: true},
			{ID: "middle-song-we", Name: "Middle Song", Duration: 3, Order: 4, Type: models.SectionSong, IsRequired: true},
			{ID: "watchtower-study", Name: "Watchtower Study", Duration: 60, Order: 5, Type: models.SectionStudy, IsRequired: true},
			{ID: "announcements-we", Name: "Announcements", Duration: 4, Order: 6, Type: models.SectionTalk, IsRequired: true},
			{ID: "closing-song-we", Name: "Closing Song", Duration: 3, Order: 7, Type: models.SectionSong, IsRequired: true},
		},
	}

	Normalise(midweek)
	Normalise(weekend)

	return []*models.Template{midweek, weekend}
}
