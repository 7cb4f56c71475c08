package icons

// Terminal stand-ins for the glyphs each family ships. Names follow the
// family's own naming, so "menu" in MaterialIcons is "bars" in FontAwesome.
const (
	symMenu     = "☰"
	symBell     = "🔔"
	symSearch   = "⌕"
	symSettings = "⚙"
	symHome     = "⌂"
	symUser     = "☺"
	symClose    = "✕"
	symBack     = "‹"
	symForward  = "›"
	symMore     = "⋮"
	symMoreH    = "⋯"
	symHeart    = "♥"
	symStar     = "★"
	symPlus     = "+"
	symCheck    = "✓"
	symInfo     = "ℹ"
	symWarning  = "⚠"
	symMail     = "✉"
	symEdit     = "✎"
	symRefresh  = "↻"
	symShare    = "⇪"
	symTrash    = "🗑"
	symCamera   = "📷"
	symCalendar = "📅"
	symLock     = "🔒"
	symFilter   = "⏷"
	symUp       = "↑"
	symDown     = "↓"
	symLeft     = "←"
	symRight    = "→"
	symGithub   = "\uf09b"
	symTwitter  = "\uf099"
)

var defaultGlyphs = map[Family]map[string]string{
	AntDesign: {
		"menufold":   symMenu,
		"menuunfold": symMenu,
		"bells":      symBell,
		"search1":    symSearch,
		"setting":    symSettings,
		"home":       symHome,
		"user":       symUser,
		"close":      symClose,
		"left":       symBack,
		"right":      symForward,
		"ellipsis1":  symMoreH,
		"heart":      symHeart,
		"star":       symStar,
		"plus":       symPlus,
		"check":      symCheck,
		"infocirlce": symInfo,
		"warning":    symWarning,
		"mail":       symMail,
		"edit":       symEdit,
		"reload1":    symRefresh,
		"sharealt":   symShare,
		"delete":     symTrash,
		"camera":     symCamera,
		"calendar":   symCalendar,
		"lock":       symLock,
		"filter":     symFilter,
		"arrowup":    symUp,
		"arrowdown":  symDown,
		"arrowleft":  symLeft,
		"arrowright": symRight,
		"github":     symGithub,
		"twitter":    symTwitter,
	},
	Entypo: {
		"menu":                  symMenu,
		"bell":                  symBell,
		"magnifying-glass":      symSearch,
		"cog":                   symSettings,
		"home":                  symHome,
		"user":                  symUser,
		"cross":                 symClose,
		"chevron-left":          symBack,
		"chevron-right":         symForward,
		"dots-three-vertical":   symMore,
		"dots-three-horizontal": symMoreH,
		"heart":                 symHeart,
		"star":                  symStar,
		"plus":                  symPlus,
		"check":                 symCheck,
		"info":                  symInfo,
		"warning":               symWarning,
		"mail":                  symMail,
		"edit":                  symEdit,
		"cycle":                 symRefresh,
		"share":                 symShare,
		"trash":                 symTrash,
		"camera":                symCamera,
		"calendar":              symCalendar,
		"lock":                  symLock,
		"funnel":                symFilter,
		"github":                symGithub,
		"twitter":               symTwitter,
	},
	EvilIcons: {
		"navicon":       symMenu,
		"bell":          symBell,
		"search":        symSearch,
		"gear":          symSettings,
		"user":          symUser,
		"close":         symClose,
		"chevron-left":  symBack,
		"chevron-right": symForward,
		"heart":         symHeart,
		"star":          symStar,
		"plus":          symPlus,
		"check":         symCheck,
		"exclamation":   symWarning,
		"envelope":      symMail,
		"pencil":        symEdit,
		"refresh":       symRefresh,
		"share-apple":   symShare,
		"trash":         symTrash,
		"camera":        symCamera,
		"calendar":      symCalendar,
		"lock":          symLock,
		"arrow-up":      symUp,
		"arrow-down":    symDown,
		"arrow-left":    symLeft,
		"arrow-right":   symRight,
		"sc-github":     symGithub,
		"sc-twitter":    symTwitter,
	},
	Feather: {
		"menu":            symMenu,
		"bell":            symBell,
		"search":          symSearch,
		"settings":        symSettings,
		"home":            symHome,
		"user":            symUser,
		"x":               symClose,
		"chevron-left":    symBack,
		"chevron-right":   symForward,
		"more-vertical":   symMore,
		"more-horizontal": symMoreH,
		"heart":           symHeart,
		"star":            symStar,
		"plus":            symPlus,
		"check":           symCheck,
		"info":            symInfo,
		"alert-triangle":  symWarning,
		"mail":            symMail,
		"edit":            symEdit,
		"refresh-cw":      symRefresh,
		"share":           symShare,
		"trash":           symTrash,
		"camera":          symCamera,
		"calendar":        symCalendar,
		"lock":            symLock,
		"filter":          symFilter,
		"arrow-up":        symUp,
		"arrow-down":      symDown,
		"arrow-left":      symLeft,
		"arrow-right":     symRight,
		"github":          symGithub,
		"twitter":         symTwitter,
	},
	FontAwesome: {
		"bars":          symMenu,
		"navicon":       symMenu,
		"bell":          symBell,
		"search":        symSearch,
		"cog":           symSettings,
		"gear":          symSettings,
		"home":          symHome,
		"user":          symUser,
		"times":         symClose,
		"close":         symClose,
		"chevron-left":  symBack,
		"chevron-right": symForward,
		"ellipsis-v":    symMore,
		"ellipsis-h":    symMoreH,
		"heart":         symHeart,
		"star":          symStar,
		"plus":          symPlus,
		"check":         symCheck,
		"info":          symInfo,
		"warning":       symWarning,
		"envelope":      symMail,
		"pencil":        symEdit,
		"refresh":       symRefresh,
		"share":         symShare,
		"trash":         symTrash,
		"camera":        symCamera,
		"calendar":      symCalendar,
		"lock":          symLock,
		"filter":        symFilter,
		"arrow-up":      symUp,
		"arrow-down":    symDown,
		"arrow-left":    symLeft,
		"arrow-right":   symRight,
		"github":        symGithub,
		"twitter":       symTwitter,
	},
	FontAwesome5: {
		"bars":                 symMenu,
		"bell":                 symBell,
		"search":               symSearch,
		"cog":                  symSettings,
		"home":                 symHome,
		"user":                 symUser,
		"times":                symClose,
		"chevron-left":         symBack,
		"chevron-right":        symForward,
		"ellipsis-v":           symMore,
		"ellipsis-h":           symMoreH,
		"heart":                symHeart,
		"star":                 symStar,
		"plus":                 symPlus,
		"check":                symCheck,
		"info-circle":          symInfo,
		"exclamation-triangle": symWarning,
		"envelope":             symMail,
		"edit":                 symEdit,
		"sync":                 symRefresh,
		"share":                symShare,
		"trash":                symTrash,
		"camera":               symCamera,
		"calendar":             symCalendar,
		"lock":                 symLock,
		"filter":               symFilter,
		"arrow-up":             symUp,
		"arrow-down":           symDown,
		"arrow-left":           symLeft,
		"arrow-right":          symRight,
		"github":               symGithub,
		"twitter":              symTwitter,
	},
	FontAwesome6: {
		"bars":                 symMenu,
		"bell":                 symBell,
		"magnifying-glass":     symSearch,
		"gear":                 symSettings,
		"house":                symHome,
		"user":                 symUser,
		"xmark":                symClose,
		"chevron-left":         symBack,
		"chevron-right":        symForward,
		"ellipsis-vertical":    symMore,
		"ellipsis":             symMoreH,
		"heart":                symHeart,
		"star":                 symStar,
		"plus":                 symPlus,
		"check":                symCheck,
		"circle-info":          symInfo,
		"triangle-exclamation": symWarning,
		"envelope":             symMail,
		"pen":                  symEdit,
		"arrows-rotate":        symRefresh,
		"share":                symShare,
		"trash":                symTrash,
		"camera":               symCamera,
		"calendar":             symCalendar,
		"lock":                 symLock,
		"filter":               symFilter,
		"arrow-up":             symUp,
		"arrow-down":           symDown,
		"arrow-left":           symLeft,
		"arrow-right":          symRight,
		"github":               symGithub,
		"x-twitter":            symTwitter,
	},
	Fontisto: {
		"nav-icon":        symMenu,
		"bell":            symBell,
		"search":          symSearch,
		"player-settings": symSettings,
		"home":            symHome,
		"person":          symUser,
		"close-a":         symClose,
		"angle-left":      symBack,
		"angle-right":     symForward,
		"more-v-a":        symMore,
		"heart":           symHeart,
		"star":            symStar,
		"plus-a":          symPlus,
		"check":           symCheck,
		"info":            symInfo,
		"envelope":        symMail,
		"pencil":          symEdit,
		"spinner-refresh": symRefresh,
		"share":           symShare,
		"trash":           symTrash,
		"camera":          symCamera,
		"calendar":        symCalendar,
		"locked":          symLock,
		"arrow-up":        symUp,
		"arrow-down":      symDown,
		"arrow-left":      symLeft,
		"arrow-right":     symRight,
		"github":          symGithub,
		"twitter":         symTwitter,
	},
	Foundation: {
		"list":             symMenu,
		"alert":            symWarning,
		"magnifying-glass": symSearch,
		"widget":           symSettings,
		"home":             symHome,
		"torso":            symUser,
		"x":                symClose,
		"arrow-left":       symLeft,
		"arrow-right":      symRight,
		"arrow-up":         symUp,
		"arrow-down":       symDown,
		"heart":            symHeart,
		"star":             symStar,
		"plus":             symPlus,
		"check":            symCheck,
		"info":             symInfo,
		"mail":             symMail,
		"pencil":           symEdit,
		"refresh":          symRefresh,
		"share":            symShare,
		"trash":            symTrash,
		"camera":           symCamera,
		"calendar":         symCalendar,
		"lock":             symLock,
		"filter":           symFilter,
		"social-github":    symGithub,
		"social-twitter":   symTwitter,
	},
	Ionicons: {
		"menu":                symMenu,
		"notifications":       symBell,
		"search":              symSearch,
		"settings":            symSettings,
		"home":                symHome,
		"person":              symUser,
		"close":               symClose,
		"chevron-back":        symBack,
		"chevron-forward":     symForward,
		"ellipsis-vertical":   symMore,
		"ellipsis-horizontal": symMoreH,
		"heart":               symHeart,
		"star":                symStar,
		"add":                 symPlus,
		"checkmark":           symCheck,
		"information-circle":  symInfo,
		"warning":             symWarning,
		"mail":                symMail,
		"create":              symEdit,
		"refresh":             symRefresh,
		"share":               symShare,
		"trash":               symTrash,
		"camera":              symCamera,
		"calendar":            symCalendar,
		"lock-closed":         symLock,
		"filter":              symFilter,
		"arrow-up":            symUp,
		"arrow-down":          symDown,
		"arrow-back":          symLeft,
		"arrow-forward":       symRight,
		"logo-github":         symGithub,
		"logo-twitter":        symTwitter,
	},
	MaterialCommunityIcons: {
		"menu":            symMenu,
		"bell":            symBell,
		"magnify":         symSearch,
		"cog":             symSettings,
		"home":            symHome,
		"account":         symUser,
		"close":           symClose,
		"chevron-left":    symBack,
		"chevron-right":   symForward,
		"dots-vertical":   symMore,
		"dots-horizontal": symMoreH,
		"heart":           symHeart,
		"star":            symStar,
		"plus":            symPlus,
		"check":           symCheck,
		"information":     symInfo,
		"alert":           symWarning,
		"email":           symMail,
		"pencil":          symEdit,
		"refresh":         symRefresh,
		"share":           symShare,
		"delete":          symTrash,
		"camera":          symCamera,
		"calendar":        symCalendar,
		"lock":            symLock,
		"filter":          symFilter,
		"arrow-up":        symUp,
		"arrow-down":      symDown,
		"arrow-left":      symLeft,
		"arrow-right":     symRight,
		"github":          symGithub,
		"twitter":         symTwitter,
	},
	MaterialIcons: {
		"menu":              symMenu,
		"notifications":     symBell,
		"search":            symSearch,
		"settings":          symSettings,
		"home":              symHome,
		"person":            symUser,
		"close":             symClose,
		"arrow-back-ios":    symBack,
		"arrow-forward-ios": symForward,
		"more-vert":         symMore,
		"more-horiz":        symMoreH,
		"favorite":          symHeart,
		"star":              symStar,
		"add":               symPlus,
		"check":             symCheck,
		"info":              symInfo,
		"warning":           symWarning,
		"mail":              symMail,
		"edit":              symEdit,
		"refresh":           symRefresh,
		"share":             symShare,
		"delete":            symTrash,
		"photo-camera":      symCamera,
		"event":             symCalendar,
		"lock":              symLock,
		"filter-list":       symFilter,
		"arrow-upward":      symUp,
		"arrow-downward":    symDown,
		"arrow-back":        symLeft,
		"arrow-forward":     symRight,
	},
	Octicons: {
		"three-bars":       symMenu,
		"bell":             symBell,
		"search":           symSearch,
		"gear":             symSettings,
		"home":             symHome,
		"person":           symUser,
		"x":                symClose,
		"chevron-left":     symBack,
		"chevron-right":    symForward,
		"kebab-horizontal": symMoreH,
		"heart":            symHeart,
		"star":             symStar,
		"plus":             symPlus,
		"check":            symCheck,
		"info":             symInfo,
		"alert":            symWarning,
		"mail":             symMail,
		"pencil":           symEdit,
		"sync":             symRefresh,
		"share":            symShare,
		"trash":            symTrash,
		"calendar":         symCalendar,
		"lock":             symLock,
		"filter":           symFilter,
		"arrow-up":         symUp,
		"arrow-down":       symDown,
		"arrow-left":       symLeft,
		"arrow-right":      symRight,
		"mark-github":      symGithub,
	},
	SimpleLineIcons: {
		"menu":             symMenu,
		"bell":             symBell,
		"magnifier":        symSearch,
		"settings":         symSettings,
		"home":             symHome,
		"user":             symUser,
		"close":            symClose,
		"arrow-left":       symBack,
		"arrow-right":      symForward,
		"options-vertical": symMore,
		"options":          symMoreH,
		"heart":            symHeart,
		"star":             symStar,
		"plus":             symPlus,
		"check":            symCheck,
		"info":             symInfo,
		"exclamation":      symWarning,
		"envelope":         symMail,
		"pencil":           symEdit,
		"refresh":          symRefresh,
		"share":            symShare,
		"trash":            symTrash,
		"camera":           symCamera,
		"calendar":         symCalendar,
		"lock":             symLock,
		"arrow-up":         symUp,
		"arrow-down":       symDown,
		"social-github":    symGithub,
		"social-twitter":   symTwitter,
	},
	Zocial: {
		"email":    symMail,
		"github":   symGithub,
		"twitter":  symTwitter,
		"call":     "✆",
		"rss":      "◉",
		"cal":      symCalendar,
		"dropbox":  "◇",
		"bitcoin":  "₿",
		"plancast": symStar,
	},
}
