package emailverifier

// GenericTLDs is the set of generic top-level domains TopLevelDomainExists
// recognizes (not exhaustive against IANA's registry, but covers the
// common cases the syntax/suggestion checks need).
var GenericTLDs = map[string]struct{}{
	"com": {}, "org": {}, "net": {}, "int": {}, "edu": {}, "gov": {}, "mil": {},
	"info": {}, "biz": {}, "name": {}, "pro": {}, "coop": {}, "museum": {},
	"aero": {}, "jobs": {}, "travel": {}, "mobi": {}, "asia": {}, "cat": {},
	"tel": {}, "xxx": {}, "app": {}, "dev": {}, "io": {}, "ai": {}, "co": {},
	"shop": {}, "store": {}, "online": {}, "site": {}, "tech": {}, "email": {},
	"cloud": {}, "digital": {}, "software": {}, "systems": {}, "network": {},
}

// CountryCodeTLDs is the set of ISO 3166-1 alpha-2 country-code TLDs
// TopLevelDomainExists recognizes.
var CountryCodeTLDs = map[string]struct{}{
	"ac": {}, "ad": {}, "ae": {}, "af": {}, "ag": {}, "ai": {}, "al": {}, "am": {},
	"ao": {}, "aq": {}, "ar": {}, "as": {}, "at": {}, "au": {}, "aw": {}, "ax": {},
	"az": {}, "ba": {}, "bb": {}, "bd": {}, "be": {}, "bf": {}, "bg": {}, "bh": {},
	"bi": {}, "bj": {}, "bm": {}, "bn": {}, "bo": {}, "br": {}, "bs": {}, "bt": {},
	"bw": {}, "by": {}, "bz": {}, "ca": {}, "cc": {}, "cd": {}, "cf": {}, "cg": {},
	"ch": {}, "ci": {}, "ck": {}, "cl": {}, "cm": {}, "cn": {}, "co": {}, "cr": {},
	"cu": {}, "cv": {}, "cw": {}, "cx": {}, "cy": {}, "cz": {}, "de": {}, "dj": {},
	"dk": {}, "dm": {}, "do": {}, "dz": {}, "ec": {}, "ee": {}, "eg": {}, "es": {},
	"et": {}, "eu": {}, "fi": {}, "fj": {}, "fk": {}, "fm": {}, "fo": {}, "fr": {},
	"ga": {}, "gb": {}, "gd": {}, "ge": {}, "gf": {}, "gg": {}, "gh": {}, "gi": {},
	"gl": {}, "gm": {}, "gn": {}, "gp": {}, "gq": {}, "gr": {}, "gt": {}, "gu": {},
	"gw": {}, "gy": {}, "hk": {}, "hn": {}, "hr": {}, "ht": {}, "hu": {}, "id": {},
	"ie": {}, "il": {}, "im": {}, "in": {}, "iq": {}, "ir": {}, "is": {}, "it": {},
	"je": {}, "jm": {}, "jo": {}, "jp": {}, "ke": {}, "kg": {}, "kh": {}, "ki": {},
	"km": {}, "kn": {}, "kp": {}, "kr": {}, "kw": {}, "ky": {}, "kz": {}, "la": {},
	"lb": {}, "lc": {}, "li": {}, "lk": {}, "lr": {}, "ls": {}, "lt": {}, "lu": {},
	"lv": {}, "ly": {}, "ma": {}, "mc": {}, "md": {}, "me": {}, "mg": {}, "mh": {},
	"mk": {}, "ml": {}, "mm": {}, "mn": {}, "mo": {}, "mp": {}, "mq": {}, "mr": {},
	"ms": {}, "mt": {}, "mu": {}, "mv": {}, "mw": {}, "mx": {}, "my": {}, "mz": {},
	"na": {}, "nc": {}, "ne": {}, "nf": {}, "ng": {}, "ni": {}, "nl": {}, "no": {},
	"np": {}, "nr": {}, "nu": {}, "nz": {}, "om": {}, "pa": {}, "pe": {}, "pf": {},
	"pg": {}, "ph": {}, "pk": {}, "pl": {}, "pm": {}, "pn": {}, "pr": {}, "ps": {},
	"pt": {}, "pw": {}, "py": {}, "qa": {}, "re": {}, "ro": {}, "rs": {}, "ru": {},
	"rw": {}, "sa": {}, "sb": {}, "sc": {}, "sd": {}, "se": {}, "sg": {}, "sh": {},
	"si": {}, "sk": {}, "sl": {}, "sm": {}, "sn": {}, "so": {}, "sr": {}, "ss": {},
	"st": {}, "su": {}, "sv": {}, "sx": {}, "sy": {}, "sz": {}, "tc": {}, "td": {},
	"tf": {}, "tg": {}, "th": {}, "tj": {}, "tk": {}, "tl": {}, "tm": {}, "tn": {},
	"to": {}, "tr": {}, "tt": {}, "tv": {}, "tw": {}, "tz": {}, "ua": {}, "ug": {},
	"uk": {}, "us": {}, "uy": {}, "uz": {}, "va": {}, "vc": {}, "ve": {}, "vg": {},
	"vi": {}, "vn": {}, "vu": {}, "wf": {}, "ws": {}, "ye": {}, "yt": {}, "za": {},
	"zm": {}, "zw": {},
}
