package moderation

// fixed severe-content list, applied to every tool unless a tool opts out
// with IgnoreGlobalBlacklist
var globalBlacklist = []string{
	"child porn",
	"child abuse",
	"how to make a bomb",
	"build a bomb",
	"make methamphetamine",
	"synthesize ricin",
	"kill myself",
	"school shooting",
}

// merged at medium and high sensitivity
var mildProfanity = []string{
	"damn",
	"crap",
	"hell no",
	"piss off",
	"bastard",
}

// additionally merged at high sensitivity
var strongProfanity = []string{
	"fuck",
	"shit",
	"asshole",
	"bitch",
	"cunt",
	"dickhead",
	"motherfucker",
}
