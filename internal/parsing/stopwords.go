package parsing

// stopwords covers generic English plus the job-posting and resume filler
// that would otherwise dilute domain signal ("candidate", "team",
// "responsibilities"). Kept flat and immutable; loaded once.
var stopwords = map[string]bool{
	// articles, pronouns, conjunctions, prepositions
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"nor": true, "so": true, "yet": true, "both": true, "either": true,
	"neither": true, "not": true, "no": true, "of": true, "in": true,
	"on": true, "at": true, "to": true, "from": true, "by": true, "for": true,
	"with": true, "without": true, "about": true, "above": true, "below": true,
	"under": true, "over": true, "between": true, "among": true, "through": true,
	"during": true, "before": true, "after": true, "into": true, "onto": true,
	"out": true, "off": true, "up": true, "down": true, "across": true,
	"toward": true, "towards": true, "within": true, "along": true,
	"around": true, "against": true, "per": true, "via": true, "as": true,
	"i": true, "me": true, "my": true, "we": true, "us": true, "our": true,
	"ours": true, "you": true, "your": true, "yours": true, "he": true,
	"him": true, "his": true, "she": true, "her": true, "hers": true,
	"it": true, "its": true, "they": true, "them": true, "their": true,
	"theirs": true, "this": true, "that": true, "these": true, "those": true,
	"who": true, "whom": true, "whose": true, "which": true, "what": true,
	"where": true, "when": true, "why": true, "how": true, "whether": true,
	"while": true, "because": true, "since": true, "although": true,
	"though": true, "unless": true, "until": true, "if": true, "then": true,
	"than": true, "such": true, "same": true, "own": true, "each": true,
	"every": true, "any": true, "some": true, "all": true, "most": true,
	"more": true, "much": true, "many": true, "few": true, "other": true,
	"others": true, "another": true, "etc": true,

	// auxiliaries and common verbs
	"am": true, "is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "do": true, "does": true, "did": true,
	"doing": true, "have": true, "has": true, "had": true, "having": true,
	"will": true, "would": true, "shall": true, "should": true, "can": true,
	"could": true, "may": true, "might": true, "must": true, "get": true,
	"gets": true, "got": true, "make": true, "makes": true, "made": true,
	"take": true, "takes": true, "use": true, "uses": true, "used": true,
	"using": true, "include": true, "includes": true, "including": true,
	"included": true, "need": true, "needs": true, "needed": true,
	"want": true, "wants": true, "like": true, "see": true, "seek": true,
	"seeking": true, "look": true, "looking": true, "work": true,
	"works": true, "working": true, "help": true, "helps": true,
	"helping": true, "provide": true, "provides": true, "providing": true,
	"ensure": true, "ensures": true, "ensuring": true, "able": true,
	"also": true, "well": true, "just": true, "only": true, "even": true,
	"still": true, "here": true, "there": true, "very": true, "too": true,
	"quite": true, "rather": true, "really": true, "please": true,
	"eg": true, "ie": true,

	// generic adjectives and quantifiers
	"new": true, "good": true, "great": true, "best": true, "better": true,
	"strong": true, "excellent": true, "high": true, "highly": true,
	"low": true, "large": true, "small": true, "big": true, "long": true,
	"short": true, "first": true, "last": true, "next": true, "top": true,
	"key": true, "main": true, "various": true, "multiple": true,
	"several": true, "different": true, "relevant": true, "related": true,
	"similar": true, "general": true, "overall": true, "broad": true,
	"wide": true, "deep": true, "fast": true, "early": true, "late": true,

	// job-posting and resume filler
	"candidate": true, "candidates": true, "applicant": true,
	"applicants": true, "position": true, "positions": true, "role": true,
	"roles": true, "job": true, "jobs": true, "title": true, "career": true,
	"careers": true, "opportunity": true, "opportunities": true,
	"company": true, "companies": true, "organization": true,
	"organizations": true, "employer": true, "team": true, "teams": true,
	"department": true, "group": true, "staff": true, "member": true,
	"members": true, "colleague": true, "colleagues": true,
	"responsibility": true, "responsibilities": true, "duty": true,
	"duties": true, "requirement": true, "requirements": true,
	"required": true, "require": true, "requires": true, "qualification": true,
	"qualifications": true, "qualified": true, "preferred": true,
	"desired": true, "plus": true, "bonus": true, "benefit": true,
	"benefits": true, "salary": true, "compensation": true, "pay": true,
	"perks": true, "hire": true, "hiring": true, "hired": true, "join": true,
	"joining": true, "apply": true, "applying": true, "application": true,
	"applications": true, "resume": true, "cv": true, "interview": true,
	"offer": true, "employment": true, "employee": true, "employees": true,
	"full-time": true, "part-time": true, "fulltime": true, "parttime": true,
	"remote": true, "hybrid": true, "onsite": true, "on-site": true,
	"location": true, "located": true, "office": true, "day": true,
	"days": true, "year": true, "years": true, "month": true, "months": true,
	"experience": true, "experiences": true, "experienced": true,
	"skill": true, "skills": true, "skilled": true, "ability": true,
	"abilities": true, "knowledge": true, "understanding": true,
	"familiarity": true, "familiar": true, "proficiency": true,
	"proficient": true, "background": true, "degree": true, "bachelor": true,
	"bachelors": true, "master": true, "masters": true, "education": true,
	"equivalent": true, "minimum": true, "least": true, "ideal": true,
	"ideally": true, "successful": true, "success": true, "passion": true,
	"passionate": true, "motivated": true, "driven": true, "dynamic": true,
	"exciting": true, "innovative": true, "impact": true, "impactful": true,
	"mission": true, "culture": true, "environment": true, "fast-paced": true,
	"day-to-day": true,
}

// RemoveStopwords filters tokens against the stopword set. Single-character
// tokens are always discarded regardless of content.
func RemoveStopwords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) < 2 {
			continue
		}
		if stopwords[t] {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// IsStopword reports whether a lowercase token is in the stopword set.
func IsStopword(token string) bool {
	return stopwords[token]
}
