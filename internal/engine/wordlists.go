package engine

// 规则引擎使用的词表。批改结果的可解释性依赖这些表保持稳定，
// 调整条目会直接改变打分与纠错输出。

// commonMisspellings 常见拼写错误 -> 正确写法
var commonMisspellings = map[string]string{
	// 缩写漏撇号
	"alot":     "a lot",
	"cant":     "can't",
	"dont":     "don't",
	"doesnt":   "doesn't",
	"didnt":    "didn't",
	"couldnt":  "couldn't",
	"shouldnt": "shouldn't",
	"wouldnt":  "wouldn't",
	"wont":     "won't",
	"isnt":     "isn't",
	"wasnt":    "wasn't",
	"werent":   "weren't",
	"havent":   "haven't",
	"hasnt":    "hasn't",
	"hadnt":    "hadn't",
	"youre":    "you're",
	"youve":    "you've",
	"youll":    "you'll",
	"youd":     "you'd",
	"hes":      "he's",
	"shes":     "she's",
	"weve":     "we've",
	"wed":      "we'd",
	"theyd":    "they'd",
	"theyve":   "they've",
	"thats":    "that's",
	"whats":    "what's",
	"wheres":   "where's",
	"hows":     "how's",
	"whos":     "who's",
	"whens":    "when's",
	"whys":     "why's",

	// 高频拼写错误
	"recieve":      "receive",
	"seperate":     "separate",
	"definately":   "definitely",
	"occured":      "occurred",
	"begining":     "beginning",
	"beleive":      "believe",
	"acheive":      "achieve",
	"neccessary":   "necessary",
	"accomodate":   "accommodate",
	"embarass":     "embarrass",
	"existance":    "existence",
	"independant":  "independent",
	"maintainance": "maintenance",
	"occassion":    "occasion",
	"priviledge":   "privilege",
	"recomend":     "recommend",
	"succesful":    "successful",
	"tommorrow":    "tomorrow",
	"untill":       "until",
	"wierd":        "weird",
	"goverment":    "government",
	"enviroment":   "environment",
	"arguement":    "argument",
	"judgement":    "judgment",
	"knowlege":     "knowledge",
	"rythm":        "rhythm",
	"speach":       "speech",
	"writting":     "writing",
	"grammer":      "grammar",
}

// confusedWords 易混词，命中时提示可能混用
var confusedWords = map[string][]string{
	"affect":     {"effect"},
	"effect":     {"affect"},
	"accept":     {"except"},
	"except":     {"accept"},
	"than":       {"then"},
	"then":       {"than"},
	"there":      {"their", "they're"},
	"their":      {"there", "they're"},
	"they're":    {"there", "their"},
	"your":       {"you're"},
	"you're":     {"your"},
	"its":        {"it's"},
	"it's":       {"its"},
	"whose":      {"who's"},
	"who's":      {"whose"},
	"weather":    {"whether"},
	"whether":    {"weather"},
	"lose":       {"loose"},
	"loose":      {"lose"},
	"principal":  {"principle"},
	"principle":  {"principal"},
	"complement": {"compliment"},
	"compliment": {"complement"},
	"desert":     {"dessert"},
	"dessert":    {"desert"},
	"advice":     {"advise"},
	"advise":     {"advice"},
	"breath":     {"breathe"},
	"breathe":    {"breath"},
	"choose":     {"chose"},
	"chose":      {"choose"},
}

// stopWords 风格检测跳过的虚词
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "this": true, "that": true, "these": true,
	"those": true, "i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true,
}

// academicWords 学术词汇表，用于语言维度加分
var academicWords = []string{
	"analyze", "evaluate", "demonstrate", "illustrate", "examine",
	"investigate", "establish", "determine", "significant", "substantial",
	"comprehensive", "fundamental", "essential", "crucial", "critical",
	"perspective", "approach", "methodology", "framework", "concept",
	"theory", "hypothesis", "evidence", "research", "study", "analysis",
	"conclusion", "argument", "thesis", "claim", "furthermore", "moreover",
	"however", "nevertheless", "consequently", "therefore", "thus", "hence",
	"accordingly", "subsequently",
}

// transitionWords 衔接词表，用于结构与连贯性分析
var transitionWords = []string{
	"first", "second", "third", "next", "then", "finally",
	"however", "furthermore", "moreover", "additionally", "in addition",
	"similarly", "likewise", "in contrast", "on the other hand", "meanwhile",
	"consequently", "therefore", "thus", "as a result", "in conclusion",
}

// evidenceIndicators 论据引用标志
var evidenceIndicators = []string{
	"for example", "according to", "the text states", "evidence shows",
	"the author argues", "research shows", "studies indicate",
}

var introIndicators = []string{
	"in this essay", "this essay will", "i will argue",
	"the author suggests", "this paper", "the purpose",
}

var conclusionIndicators = []string{
	"in conclusion", "to conclude", "in summary",
	"therefore", "thus", "overall", "finally",
}

var thesisIndicators = []string{
	"argue", "claim", "believe", "suggest", "propose",
	"maintain", "assert", "contend", "demonstrate",
}

// subordinatingConjunctions 用于语言维度的复杂句识别
var subordinatingConjunctions = []string{
	"because", "although", "though", "while", "since", "if", "unless",
	"whereas", "when", "whenever", "after", "before", "until", "as",
}

// coherenceTransitions 段落衔接检测使用的衔接词
var coherenceTransitions = []string{
	"however", "therefore", "furthermore", "moreover", "consequently",
	"in addition", "similarly", "likewise", "in contrast", "on the other hand",
	"first", "second", "third", "finally", "in conclusion", "to summarize",
}

// redundantPhrases 冗余短语 -> 精简写法
var redundantPhrases = map[string]string{
	"free gift":           "gift",
	"future plans":        "plans",
	"past history":        "history",
	"advance planning":    "planning",
	"close proximity":     "proximity",
	"final outcome":       "outcome",
	"unexpected surprise": "surprise",
	"true fact":           "fact",
}
