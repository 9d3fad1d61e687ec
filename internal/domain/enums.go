package domain

// ArchiveType is the format of an imported archive.
type ArchiveType string

const (
	ArchiveFacebook      ArchiveType = "facebook"
	ArchiveGoogleTakeout ArchiveType = "googletakeout"
	ArchiveGPX           ArchiveType = "gpx"
	ArchiveICalendar     ArchiveType = "icalendar"
	ArchiveJSON          ArchiveType = "json"
	ArchiveN26CSV        ArchiveType = "n26csv"
	ArchiveReddit        ArchiveType = "reddit"
	ArchiveTelegram      ArchiveType = "telegram"
	ArchiveTwitter       ArchiveType = "twitter"
)

var archiveDisplayNames = map[ArchiveType]string{
	ArchiveFacebook:      "Facebook",
	ArchiveGoogleTakeout: "Google Takeout",
	ArchiveGPX:           "GPX",
	ArchiveICalendar:     "iCalendar",
	ArchiveJSON:          "JSON",
	ArchiveN26CSV:        "N26 CSV",
	ArchiveReddit:        "Reddit",
	ArchiveTelegram:      "Telegram",
	ArchiveTwitter:       "Twitter",
}

// ArchiveTypes lists every archive type in display order.
var ArchiveTypes = []ArchiveType{
	ArchiveFacebook, ArchiveGoogleTakeout, ArchiveGPX, ArchiveICalendar,
	ArchiveJSON, ArchiveN26CSV, ArchiveReddit, ArchiveTelegram, ArchiveTwitter,
}

func (t ArchiveType) String() string { return string(t) }

func (t ArchiveType) IsValid() bool {
	_, ok := archiveDisplayNames[t]
	return ok
}

// DisplayName returns the human-readable archive type name.
func (t ArchiveType) DisplayName() string {
	if name, ok := archiveDisplayNames[t]; ok {
		return name
	}
	return string(t)
}

// SourceType is the kind of a live data source.
type SourceType string

const (
	SourceFilesystem SourceType = "filesystem"
	SourceGit        SourceType = "git"
	SourceHackerNews SourceType = "hackernews"
	SourceReddit     SourceType = "reddit"
	SourceRSS        SourceType = "rss"
	SourceRsync      SourceType = "rsync"
	SourceTrakt      SourceType = "trakt"
	SourceTwitter    SourceType = "twitter"
)

// SourceTypes lists every source type in display order.
var SourceTypes = []SourceType{
	SourceFilesystem, SourceGit, SourceHackerNews, SourceReddit,
	SourceRSS, SourceRsync, SourceTrakt, SourceTwitter,
}

func (t SourceType) String() string { return string(t) }

func (t SourceType) IsValid() bool {
	switch t {
	case SourceFilesystem, SourceGit, SourceHackerNews, SourceReddit,
		SourceRSS, SourceRsync, SourceTrakt, SourceTwitter:
		return true
	}
	return false
}
