package store

import (
	"time"

	communitymodel "divelog_studio/internal/domain/community/model"
	divelogmodel "divelog_studio/internal/domain/divelog/model"
	equipmentmodel "divelog_studio/internal/domain/equipment/model"
	forummodel "divelog_studio/internal/domain/forum/model"
	mediamodel "divelog_studio/internal/domain/media/model"
	membermodel "divelog_studio/internal/domain/member/model"
	notificationmodel "divelog_studio/internal/domain/notification/model"
	sitemodel "divelog_studio/internal/domain/site/model"

	"golang.org/x/crypto/bcrypt"
)

// 演示账号密码（仅用于本地演示环境）
const (
	SeedAdminPassword  = "admin-demo"
	SeedMemberPassword = "dive-demo"
)

func mustHash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}

func at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed 载入演示数据，只在进程启动时执行一次
func Seed(s *State) {
	adminHash := mustHash(SeedAdminPassword)
	memberHash := mustHash(SeedMemberPassword)

	s.Members = []membermodel.Profile{
		{
			ID:               "member-01",
			Name:             "Armin Berger",
			Email:            "armin@divelog.studio",
			PasswordHash:     adminHash,
			Role:             membermodel.RoleAdmin,
			JoinedAt:         at("2021-03-14T09:00:00Z"),
			City:             "Kiel",
			About:            "Tauchlehrer und Plattform-Admin. Am liebsten in der Ostsee unterwegs.",
			Certifications:   []string{"CMAS ***", "PADI Divemaster"},
			FavoriteDiveSite: "site-01",
			CompletedDives:   412,
			PreferredLocale:  "de",
		},
		{
			ID:               "member-02",
			Name:             "Lena Hofmann",
			Email:            "lena@divelog.studio",
			PasswordHash:     memberHash,
			Role:             membermodel.RoleMember,
			JoinedAt:         at("2022-06-02T18:30:00Z"),
			City:             "München",
			About:            "Süßwasser-Fan, meistens im Walchensee oder am Attersee.",
			Certifications:   []string{"PADI AOWD", "Nitrox"},
			FavoriteDiveSite: "site-02",
			CompletedDives:   87,
			PreferredLocale:  "de",
		},
		{
			ID:               "member-03",
			Name:             "Jonas Weber",
			Email:            "jonas@divelog.studio",
			PasswordHash:     memberHash,
			Role:             membermodel.RoleMember,
			JoinedAt:         at("2023-01-21T07:45:00Z"),
			City:             "Hamburg",
			About:            "UW-Fotografie und Wracktauchen.",
			Certifications:   []string{"SSI AOWD"},
			FavoriteDiveSite: "site-03",
			CompletedDives:   54,
			PreferredLocale:  "en",
		},
		{
			ID:               "member-04",
			Name:             "Mira Schulz",
			Email:            "mira@divelog.studio",
			PasswordHash:     memberHash,
			Role:             membermodel.RoleMember,
			JoinedAt:         at("2024-09-10T12:00:00Z"),
			City:             "Leipzig",
			About:            "Gerade mit dem OWD fertig, sammelt erste Logeinträge.",
			Certifications:   []string{"PADI OWD"},
			CompletedDives:   12,
			PreferredLocale:  "de",
		},
	}

	// 按日期降序维护
	s.DiveLogs = []divelogmodel.DiveLog{
		{
			ID:         "log-01",
			LogNumber:  87,
			Title:      "Steilwand am Nordufer",
			Location:   "Walchensee, Bayern",
			Depth:      28.5,
			Duration:   46,
			Date:       "2025-07-19",
			Buddy:      "Jonas Weber",
			Difficulty: divelogmodel.DifficultyAdvanced,
			SiteID:     "site-02",
			DiverID:    "member-02",
		},
		{
			ID:         "log-02",
			LogNumber:  53,
			Title:      "Wrack der Elbe 1",
			Location:   "Kieler Förde",
			Depth:      22.0,
			Duration:   38,
			Date:       "2025-06-28",
			Buddy:      "Armin Berger",
			Difficulty: divelogmodel.DifficultyPro,
			SiteID:     "site-01",
			DiverID:    "member-03",
		},
		{
			ID:         "log-03",
			LogNumber:  11,
			Title:      "Erster Freiwassertauchgang",
			Location:   "Kulkwitzer See",
			Depth:      12.0,
			Duration:   31,
			Date:       "2025-05-03",
			Buddy:      "Lena Hofmann",
			Difficulty: divelogmodel.DifficultyBeginner,
			SiteID:     "site-03",
			DiverID:    "member-04",
		},
	}

	// 按厂商、型号字母序维护
	s.Equipment = []equipmentmodel.Item{
		{
			ID:           "equip-01",
			Manufacturer: "Apeks",
			Model:        "XTX50",
			SerialNumber: "AP-20481",
			Status:       equipmentmodel.StatusReady,
			LastService:  "2025-04-12",
		},
		{
			ID:           "equip-02",
			Manufacturer: "Scubapro",
			Model:        "MK25 EVO",
			SerialNumber: "SP-77410",
			Status:       equipmentmodel.StatusMaintenance,
			LastService:  "2024-11-03",
		},
		{
			ID:           "equip-03",
			Manufacturer: "Suunto",
			Model:        "D5",
			SerialNumber: "SU-33019",
			Status:       equipmentmodel.StatusReady,
			LastService:  "2025-02-20",
		},
	}

	// 按名称字母序维护
	s.Sites = []sitemodel.DiveSite{
		{
			ID:         "site-01",
			Name:       "Kieler Förde – Wrackfeld",
			Country:    "Deutschland",
			Difficulty: divelogmodel.DifficultyPro,
			Highlight:  "Wrack der Elbe 1 mit großem Fischreichtum",
			Coordinates: sitemodel.Coordinates{
				Latitude:  54.3961,
				Longitude: 10.1878,
			},
			OwnerID: "member-01",
		},
		{
			ID:         "site-02",
			Name:       "Walchensee Nordufer",
			Country:    "Deutschland",
			Difficulty: divelogmodel.DifficultyAdvanced,
			Highlight:  "Steilwand ab 18 m, sehr klares Wasser",
			Coordinates: sitemodel.Coordinates{
				Latitude:  47.5945,
				Longitude: 11.3522,
			},
			OwnerID: "member-02",
		},
		{
			ID:         "site-03",
			Name:       "Kulkwitzer See",
			Country:    "Deutschland",
			Difficulty: divelogmodel.DifficultyBeginner,
			Highlight:  "Ausbildungsplattformen und alte Straßenbahn",
			Coordinates: sitemodel.Coordinates{
				Latitude:  51.3089,
				Longitude: 12.2428,
			},
			OwnerID: "member-02",
		},
	}

	// 按标题字母序维护
	s.Media = []mediamodel.Item{
		{
			ID:      "media-01",
			Title:   "Hecht im Kraut",
			Author:  "Jonas Weber",
			OwnerID: "member-03",
			URL:     "https://cdn.divelog.studio/media/hecht-im-kraut.jpg",
			Type:    mediamodel.TypeImage,
			Source:  mediamodel.SourceURL,
		},
		{
			ID:       "media-02",
			Title:    "Steilwand Walchensee",
			Author:   "Lena Hofmann",
			OwnerID:  "member-02",
			URL:      "https://cdn.divelog.studio/media/steilwand.mp4",
			Type:     mediamodel.TypeVideo,
			Source:   mediamodel.SourceUpload,
			FileName: "steilwand.mp4",
		},
		{
			ID:      "media-03",
			Title:   "Wrackaufstieg",
			Author:  "Armin Berger",
			OwnerID: "member-01",
			URL:     "https://cdn.divelog.studio/media/wrackaufstieg.jpg",
			Type:    mediamodel.TypeImage,
			Source:  mediamodel.SourceURL,
		},
	}

	s.Posts = []communitymodel.Post{
		{
			ID:          "post-01",
			Title:       "Saisonstart am Walchensee",
			Author:      "Lena Hofmann",
			AuthorID:    "member-02",
			AuthorEmail: "lena@divelog.studio",
			Body:        "Sicht aktuell über 15 Meter, die Steilwand ist frei. Wer kommt am Wochenende mit?",
			Likes:       2,
			LikedBy:     set("member-01", "member-03"),
			DiveLogID:   "log-01",
			Attachments: []communitymodel.Attachment{
				{
					ID:     "attach-01",
					URL:    "https://cdn.divelog.studio/media/steilwand.mp4",
					Title:  "Steilwand Walchensee",
					Source: "url",
				},
			},
			Comments: []communitymodel.Comment{
				{
					ID:          "comment-01",
					Author:      "Jonas Weber",
					AuthorID:    "member-03",
					AuthorEmail: "jonas@divelog.studio",
					Message:     "Bin dabei, bringe die Kamera mit!",
					CreatedAt:   at("2025-07-20T16:05:00Z"),
				},
			},
		},
		{
			ID:       "post-02",
			Title:    "Frage zu Trockentauchanzügen",
			Author:   "Gast",
			Body:     "Lohnt sich ein Trocki schon für die ersten 50 Tauchgänge in der Ostsee?",
			Likes:    0,
			LikedBy:  set(),
			Comments: []communitymodel.Comment{},
		},
	}

	s.Categories = []forummodel.Category{
		{ID: "cat-01", Name: "Ausrüstung", Description: "Kaufberatung, Wartung und Selbstbau"},
		{ID: "cat-02", Name: "Reiseberichte", Description: "Spots, Basen und Liveaboards weltweit"},
		{ID: "cat-03", Name: "Technik & Ausbildung", Description: "Kurse, Skills und Tauchphysik"},
	}

	// 按 LastActivity 降序维护
	s.Threads = []forummodel.Thread{
		{
			ID:           "thread-01",
			Title:        "Atemregler-Wartung selbst machen?",
			Author:       "Lena Hofmann",
			AuthorID:     "member-02",
			CategoryID:   "cat-01",
			Body:         "Mein XTX50 ist wieder fällig. Traut sich jemand von euch an die Jahreswartung selbst heran oder gebt ihr grundsätzlich alles zum Händler?",
			Excerpt:      "Mein XTX50 ist wieder fällig. Traut sich jemand von euch an die Jahreswartung selbst heran oder gebt ihr grundsätzlich alles zum Händler?",
			CreatedAt:    at("2025-07-10T08:15:00Z"),
			LastActivity: at("2025-07-12T19:40:00Z"),
			Likes:        1,
			LikedBy:      set("member-03"),
			Replies: []forummodel.Reply{
				{
					ID:        "reply-01",
					Author:    "Armin Berger",
					AuthorID:  "member-01",
					Message:   "Ohne Prüfstand würde ich die Finger davon lassen, Mitteldruck einstellen ist kein Bastelprojekt.",
					CreatedAt: at("2025-07-11T10:02:00Z"),
					LikedBy:   set(),
				},
				{
					ID:        "reply-02",
					Author:    "Jonas Weber",
					AuthorID:  "member-03",
					Message:   "Sehe ich genauso. Filter und Schläuche ja, erste Stufe nein.",
					CreatedAt: at("2025-07-12T19:40:00Z"),
					Likes:     1,
					LikedBy:   set("member-02"),
				},
			},
		},
		{
			ID:           "thread-02",
			Title:        "Ägypten im November – Empfehlungen?",
			Author:       "Jonas Weber",
			AuthorID:     "member-03",
			CategoryID:   "cat-02",
			Body:         "Plane eine Woche Rotes Meer Ende November. Safari oder Basis? Wer war schon mal um die Zeit dort?",
			Excerpt:      "Plane eine Woche Rotes Meer Ende November. Safari oder Basis? Wer war schon mal um die Zeit dort?",
			CreatedAt:    at("2025-06-30T21:10:00Z"),
			LastActivity: at("2025-06-30T21:10:00Z"),
			LikedBy:      set(),
			Replies:      []forummodel.Reply{},
		},
	}

	// 按时间降序（新通知前插）
	s.Notifications = []notificationmodel.Item{
		{
			ID:          "notif-01",
			Title:       "Neue Antwort in „Atemregler-Wartung selbst machen?“",
			Description: "Jonas Weber hat auf deinen Beitrag geantwortet.",
			Timestamp:   at("2025-07-12T19:40:00Z"),
			Read:        false,
		},
		{
			ID:          "notif-02",
			Title:       "Willkommen bei divelog.studio",
			Description: "Lege deinen ersten Logbucheintrag an und vervollständige dein Profil.",
			Timestamp:   at("2025-07-01T09:00:00Z"),
			Read:        true,
		},
	}

	s.FavoriteMedia = set("media-02")
	s.FavoriteSites = set("site-02")
}

func set(ids ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
