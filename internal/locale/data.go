package locale

type definition struct {
	symbols  Symbols
	patterns Patterns
}

// Extra parsing patterns shared by the day-first languages.
var dayFirstExtra = []string{
	"d.M.yyyy",
	"d/M/yyyy",
	"d-M-yyyy",
	"d MMMM yyyy",
	"d MMM yyyy",
	"ddMMyyyy",
	"yyyy-M-d",
}

var builtin = map[string]definition{
	"en": {
		symbols: Symbols{
			Months:        []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
			ShortMonths:   []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
			Weekdays:      []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
			ShortWeekdays: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			Eras:          []string{"BC", "AD"},
			LongEras:      []string{"Before Christ", "Anno Domini"},
			NarrowEras:    []string{"B", "A"},
			AmPm:          []string{"AM", "PM"},
		},
		patterns: Patterns{
			Short:  "M/d/yy",
			Medium: "MMM d, y",
			Long:   "MMMM d, y",
			Full:   "EEEE, MMMM d, y",
			Extra: []string{
				"MMMM d yyyy",
				"MMM d yyyy",
				"d MMMM yyyy",
				"d MMM yyyy",
				"M/d/yyyy",
				"M-d-yyyy",
				"M.d.yyyy",
				"MMddyyyy",
				"yyyy-M-d",
			},
		},
	},
	"da": {
		symbols: Symbols{
			Months:        []string{"januar", "februar", "marts", "april", "maj", "juni", "juli", "august", "september", "oktober", "november", "december"},
			ShortMonths:   []string{"jan.", "feb.", "mar.", "apr.", "maj", "jun.", "jul.", "aug.", "sep.", "okt.", "nov.", "dec."},
			Weekdays:      []string{"søndag", "mandag", "tirsdag", "onsdag", "torsdag", "fredag", "lørdag"},
			ShortWeekdays: []string{"søn.", "man.", "tir.", "ons.", "tor.", "fre.", "lør."},
			Eras:          []string{"f.Kr.", "e.Kr."},
			LongEras:      []string{"før Kristus", "efter Kristus"},
			NarrowEras:    []string{"fKr", "eKr"},
			AmPm:          []string{"AM", "PM"},
		},
		patterns: Patterns{
			Short:  "dd.MM.y",
			Medium: "d. MMM y",
			Long:   "d. MMMM y",
			Full:   "EEEE 'den' d. MMMM y",
			Extra:  dayFirstExtra,
		},
	},
	"de": {
		symbols: Symbols{
			Months:        []string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
			ShortMonths:   []string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
			Weekdays:      []string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
			ShortWeekdays: []string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
			Eras:          []string{"v. Chr.", "n. Chr."},
			LongEras:      []string{"v. Chr.", "n. Chr."},
			NarrowEras:    []string{"v. Chr.", "n. Chr."},
			AmPm:          []string{"AM", "PM"},
		},
		patterns: Patterns{
			Short:  "dd.MM.yy",
			Medium: "dd.MM.y",
			Long:   "d. MMMM y",
			Full:   "EEEE, d. MMMM y",
			Extra:  dayFirstExtra,
		},
	},
	"es": {
		symbols: Symbols{
			Months:        []string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
			ShortMonths:   []string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
			Weekdays:      []string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
			ShortWeekdays: []string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
			Eras:          []string{"a. C.", "d. C."},
			LongEras:      []string{"antes de Cristo", "después de Cristo"},
			NarrowEras:    []string{"a. C.", "d. C."},
			AmPm:          []string{"a. m.", "p. m."},
		},
		patterns: Patterns{
			Short:  "d/M/yy",
			Medium: "d MMM y",
			Long:   "d 'de' MMMM 'de' y",
			Full:   "EEEE, d 'de' MMMM 'de' y",
			Extra:  dayFirstExtra,
		},
	},
	"fi": {
		symbols: Symbols{
			Months:        []string{"tammikuuta", "helmikuuta", "maaliskuuta", "huhtikuuta", "toukokuuta", "kesäkuuta", "heinäkuuta", "elokuuta", "syyskuuta", "lokakuuta", "marraskuuta", "joulukuuta"},
			ShortMonths:   []string{"tammik.", "helmik.", "maalisk.", "huhtik.", "toukok.", "kesäk.", "heinäk.", "elok.", "syysk.", "lokak.", "marrask.", "jouluk."},
			Weekdays:      []string{"sunnuntai", "maanantai", "tiistai", "keskiviikko", "torstai", "perjantai", "lauantai"},
			ShortWeekdays: []string{"su", "ma", "ti", "ke", "to", "pe", "la"},
			Eras:          []string{"eKr.", "jKr."},
			LongEras:      []string{"ennen Kristuksen syntymää", "jälkeen Kristuksen syntymän"},
			NarrowEras:    []string{"eKr", "jKr"},
			AmPm:          []string{"ap.", "ip."},
		},
		patterns: Patterns{
			Short:  "d.M.y",
			Medium: "d.M.y",
			Long:   "d. MMMM y",
			Full:   "EEEE d. MMMM y",
			Extra:  dayFirstExtra,
		},
	},
	"fr": {
		symbols: Symbols{
			Months:        []string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
			ShortMonths:   []string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
			Weekdays:      []string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
			ShortWeekdays: []string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
			Eras:          []string{"av. J.-C.", "ap. J.-C."},
			LongEras:      []string{"avant Jésus-Christ", "après Jésus-Christ"},
			NarrowEras:    []string{"av. J.-C.", "ap. J.-C."},
			AmPm:          []string{"AM", "PM"},
		},
		patterns: Patterns{
			Short:  "dd/MM/y",
			Medium: "d MMM y",
			Long:   "d MMMM y",
			Full:   "EEEE d MMMM y",
			Extra:  dayFirstExtra,
		},
	},
	"it": {
		symbols: Symbols{
			Months:        []string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
			ShortMonths:   []string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
			Weekdays:      []string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
			ShortWeekdays: []string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
			Eras:          []string{"a.C.", "d.C."},
			LongEras:      []string{"avanti Cristo", "dopo Cristo"},
			NarrowEras:    []string{"aC", "dC"},
			AmPm:          []string{"AM", "PM"},
		},
		patterns: Patterns{
			Short:  "dd/MM/yy",
			Medium: "d MMM y",
			Long:   "d MMMM y",
			Full:   "EEEE d MMMM y",
			Extra:  dayFirstExtra,
		},
	},
	"nb": {
		symbols: Symbols{
			Months:        []string{"januar", "februar", "mars", "april", "mai", "juni", "juli", "august", "september", "oktober", "november", "desember"},
			ShortMonths:   []string{"jan.", "feb.", "mar.", "apr.", "mai", "jun.", "jul.", "aug.", "sep.", "okt.", "nov.", "des."},
			Weekdays:      []string{"søndag", "mandag", "tirsdag", "onsdag", "torsdag", "fredag", "lørdag"},
			ShortWeekdays: []string{"søn.", "man.", "tir.", "ons.", "tor.", "fre.", "lør."},
			Eras:          []string{"f.Kr.", "e.Kr."},
			LongEras:      []string{"før Kristus", "etter Kristus"},
			NarrowEras:    []string{"f.Kr.", "e.Kr."},
			AmPm:          []string{"a.m.", "p.m."},
		},
		patterns: Patterns{
			Short:  "dd.MM.y",
			Medium: "d. MMM y",
			Long:   "d. MMMM y",
			Full:   "EEEE d. MMMM y",
			Extra:  dayFirstExtra,
		},
	},
	"nl": {
		symbols: Symbols{
			Months:        []string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
			ShortMonths:   []string{"jan.", "feb.", "mrt.", "apr.", "mei", "jun.", "jul.", "aug.", "sep.", "okt.", "nov.", "dec."},
			Weekdays:      []string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
			ShortWeekdays: []string{"zo", "ma", "di", "wo", "do", "vr", "za"},
			Eras:          []string{"v.Chr.", "n.Chr."},
			LongEras:      []string{"voor Christus", "na Christus"},
			NarrowEras:    []string{"v.C.", "n.C."},
			AmPm:          []string{"a.m.", "p.m."},
		},
		patterns: Patterns{
			Short:  "dd-MM-y",
			Medium: "d MMM y",
			Long:   "d MMMM y",
			Full:   "EEEE d MMMM y",
			Extra:  dayFirstExtra,
		},
	},
	"pl": {
		symbols: Symbols{
			Months:        []string{"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca", "lipca", "sierpnia", "września", "października", "listopada", "grudnia"},
			ShortMonths:   []string{"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"},
			Weekdays:      []string{"niedziela", "poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota"},
			ShortWeekdays: []string{"niedz.", "pon.", "wt.", "śr.", "czw.", "pt.", "sob."},
			Eras:          []string{"p.n.e.", "n.e."},
			LongEras:      []string{"przed naszą erą", "naszej ery"},
			NarrowEras:    []string{"p.n.e.", "n.e."},
			AmPm:          []string{"AM", "PM"},
		},
		patterns: Patterns{
			Short:  "dd.MM.y",
			Medium: "d MMM y",
			Long:   "d MMMM y",
			Full:   "EEEE, d MMMM y",
			Extra:  dayFirstExtra,
		},
	},
	"pt": {
		symbols: Symbols{
			Months:        []string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
			ShortMonths:   []string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
			Weekdays:      []string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
			ShortWeekdays: []string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
			Eras:          []string{"a.C.", "d.C."},
			LongEras:      []string{"antes de Cristo", "depois de Cristo"},
			NarrowEras:    []string{"a.C.", "d.C."},
			AmPm:          []string{"AM", "PM"},
		},
		patterns: Patterns{
			Short:  "dd/MM/y",
			Medium: "d 'de' MMM 'de' y",
			Long:   "d 'de' MMMM 'de' y",
			Full:   "EEEE, d 'de' MMMM 'de' y",
			Extra:  dayFirstExtra,
		},
	},
	"sv": {
		symbols: Symbols{
			Months:        []string{"januari", "februari", "mars", "april", "maj", "juni", "juli", "augusti", "september", "oktober", "november", "december"},
			ShortMonths:   []string{"jan.", "feb.", "mars", "apr.", "maj", "juni", "juli", "aug.", "sep.", "okt.", "nov.", "dec."},
			Weekdays:      []string{"söndag", "måndag", "tisdag", "onsdag", "torsdag", "fredag", "lördag"},
			ShortWeekdays: []string{"sön", "mån", "tis", "ons", "tors", "fre", "lör"},
			Eras:          []string{"f.Kr.", "e.Kr."},
			LongEras:      []string{"före Kristus", "efter Kristus"},
			NarrowEras:    []string{"f.Kr.", "e.Kr."},
			AmPm:          []string{"fm", "em"},
		},
		patterns: Patterns{
			Short:  "y-MM-dd",
			Medium: "d MMM y",
			Long:   "d MMMM y",
			Full:   "EEEE d MMMM y",
			Extra:  dayFirstExtra,
		},
	},
}
