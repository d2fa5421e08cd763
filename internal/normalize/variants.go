package normalize

// nicknames maps canonical first names to common diminutives. Lookup is
// symmetric: two tokens are variant-equivalent when identical, when one is
// the canonical and the other a diminutive, or when both are diminutives of
// the same canonical.
var nicknames = map[string][]string{
	"william":     {"bill", "billy", "will", "willie", "liam"},
	"robert":      {"bob", "bobby", "rob", "robbie", "bert"},
	"richard":     {"rick", "ricky", "rich", "dick"},
	"michael":     {"mike", "mikey", "mick"},
	"james":       {"jim", "jimmy", "jamie"},
	"john":        {"jack", "johnny", "jon"},
	"jonathan":    {"jon", "jonny", "nathan"},
	"joseph":      {"joe", "joey"},
	"thomas":      {"tom", "tommy"},
	"christopher": {"chris", "topher"},
	"charles":     {"charlie", "chuck", "chas"},
	"daniel":      {"dan", "danny"},
	"matthew":     {"matt", "matty"},
	"anthony":     {"tony"},
	"donald":      {"don", "donny"},
	"steven":      {"steve"},
	"stephen":     {"steve"},
	"andrew":      {"andy", "drew"},
	"kenneth":     {"ken", "kenny"},
	"edward":      {"ed", "eddie", "ted", "teddy"},
	"ronald":      {"ron", "ronnie"},
	"timothy":     {"tim", "timmy"},
	"gregory":     {"greg"},
	"lawrence":    {"larry"},
	"jeffrey":     {"jeff"},
	"frederick":   {"fred", "freddy"},
	"benjamin":    {"ben", "benny"},
	"samuel":      {"sam", "sammy"},
	"alexander":   {"alex", "al"},
	"nicholas":    {"nick", "nicky"},
	"patrick":     {"pat", "paddy"},
	"raymond":     {"ray"},
	"gerald":      {"jerry", "gerry"},
	"peter":       {"pete"},
	"david":       {"dave", "davey"},
	"douglas":     {"doug"},
	"elizabeth":   {"liz", "beth", "betty", "lisa", "eliza"},
	"margaret":    {"maggie", "meg", "peggy", "marge"},
	"katherine":   {"kate", "katie", "kathy", "kat"},
	"catherine":   {"cathy", "cat", "kate"},
	"jennifer":    {"jen", "jenny"},
	"jessica":     {"jess", "jessie"},
	"stephanie":   {"steph"},
	"patricia":    {"pat", "patty", "trish", "tricia"},
	"deborah":     {"deb", "debbie"},
	"barbara":     {"barb", "barbie"},
	"susan":       {"sue", "susie", "suzy"},
	"kimberly":    {"kim"},
	"cynthia":     {"cindy"},
	"sandra":      {"sandy"},
	"rebecca":     {"becky", "becca"},
	"victoria":    {"vicky", "tori"},
	"christina":   {"chris", "tina", "christy"},
	"samantha":    {"sam"},
	"pamela":      {"pam"},
	"nancy":       {"nan"},
	"judith":      {"judy"},
	"dorothy":     {"dot", "dottie"},
	"amanda":      {"mandy"},
	"melissa":     {"mel", "missy"},
}

// nicknameCanon maps every known token (canonical and diminutive) to its
// canonical form. Built once at init.
var nicknameCanon = func() map[string]string {
	m := make(map[string]string, len(nicknames)*4)
	for canon, variants := range nicknames {
		m[canon] = canon
		for _, v := range variants {
			// A diminutive shared by two canonicals ("steve") keeps its
			// first registration; VariantEquivalent also checks the
			// per-canonical lists so both spellings still match.
			if _, ok := m[v]; !ok {
				m[v] = canon
			}
		}
	}
	return m
}()

// VariantEquivalent reports whether two normalized name tokens refer to the
// same first name, directly or through the nickname table.
func VariantEquivalent(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	if ca, ok := nicknameCanon[a]; ok {
		if cb, ok := nicknameCanon[b]; ok && ca == cb {
			return true
		}
	}
	// Shared-diminutive canonicals ("steven"/"stephen" -> "steve") are not
	// collapsed by nicknameCanon, so scan the lists for the remaining cases.
	for canon, variants := range nicknames {
		inA := a == canon
		inB := b == canon
		for _, v := range variants {
			if v == a {
				inA = true
			}
			if v == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// titleSynonyms groups business-title spellings that mean the same role.
var titleSynonyms = [][]string{
	{"chief executive officer", "ceo", "c.e.o.", "chief executive"},
	{"chief financial officer", "cfo", "c.f.o."},
	{"chief operating officer", "coo", "c.o.o.", "chief operations officer"},
	{"chief technology officer", "cto", "c.t.o."},
	{"chief information officer", "cio", "c.i.o."},
	{"chief marketing officer", "cmo", "c.m.o."},
	{"vice president", "vp", "v.p.", "vice-president"},
	{"senior vice president", "svp", "s.v.p.", "senior vp"},
	{"executive vice president", "evp", "e.v.p.", "executive vp"},
	{"president", "pres", "pres."},
	{"managing director", "md", "managing dir"},
	{"managing partner", "managing member"},
	{"general manager", "gm", "g.m."},
	{"owner", "proprietor", "principal"},
	{"founder", "co-founder", "cofounder"},
	{"chairman", "chair", "chairperson", "chairman of the board"},
	{"director", "dir", "dir."},
	{"partner", "general partner"},
}

// TitleEquivalent reports whether two normalized titles are synonyms per
// the title table. Exact equality is handled by the caller.
func TitleEquivalent(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	for _, group := range titleSynonyms {
		inA, inB := false, false
		for _, t := range group {
			if t == a {
				inA = true
			}
			if t == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}

// ExecutiveTitleKeywords lists tokens whose presence near a contact marks
// executive context for attribution weighting.
var ExecutiveTitleKeywords = []string{
	"ceo", "cfo", "coo", "cto", "cio", "cmo",
	"president", "vice president", "vp",
	"owner", "founder", "co-founder", "principal",
	"partner", "managing director", "managing partner",
	"director", "chairman", "general manager",
	"chief executive", "chief financial", "chief operating",
}
