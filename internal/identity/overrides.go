package identity

// DefaultOverrides is the curated bridge for canonical names the
// normalization heuristic cannot reconcile with the photo repository —
// mostly AKC plural forms, parenthesized varieties, and breeds the
// repository files under an FCI-style name. Values are external asset keys
// and are applied last-write-wins over automatic matches.
var DefaultOverrides = map[string]string{
	"Pointers (German Shorthaired)":    "german short haired pointing dog",
	"Siberian Huskies":                 "siberian husky dog",
	"Doberman Pinschers":               "dobermann dog",
	"Pomeranians":                      "pomeranian dog",
	"Cane Corso":                       "italian cane corso dog",
	"Brittanys":                        "brittany spaniel dog",
	"Spaniels (Cocker)":                "cocker spaniel dog",
	"Vizslas":                          "hungarian short haired pointer (vizsla) dog",
	"Belgian Malinois":                 "belgian shepherd dog",
	"Collies":                          "collie rough dog",
	"Shiba Inu":                        "shiba dog",
	"Bichons Frises":                   "bichon frise dog",
	"Papillons":                        "papillon dog",
	"Soft Coated Wheaten Terriers":     "irish soft coated wheaten terrier dog",
	"Pointers (German Wirehaired)":     "german wire haired pointing dog",
	"Chinese Shar-Pei":                 "shar pei dog",
	"Wirehaired Pointing Griffons":     "wire-haired pointing griffon korthals dog",
	"Italian Greyhounds":               "italian sighthound dog",
	"Great Pyrenees":                   "pyrenean mountain dog",
	"Dogues de Bordeaux":               "dogue de bordeaux",
	"Russell Terriers":                 "jack russell terrier dog",
	"Setters (Irish)":                  "irish red setter dog",
	"Greater Swiss Mountain Dogs":      "great swiss mountain dog",
	"Rat Terriers":                     "rat terrier dog",
	"Anatolian Shepherd Dogs":          "anatolian shepherd dog",
	"Spaniels (Boykin)":                "boykin spaniel dog",
	"Lagotti Romagnoli":                "lagotto romagnolo dog",
	"Brussels Griffons":                "griffon bruxellois dog",
	"Norwegian Elkhounds":              "norwegian elkhound grey dog",
	"Standard Schnauzers":              "schnauzer dog",
	"Bouviers des Flandres":            "bouvier des flandres dog",
	"Keeshonden":                       "keeshonden dog",
	"Retrievers (Flat-Coated)":         "flat coated retriever dog",
	"Borzois":                          "borzoi - russian hunting sighthound dog",
	"Belgian Tervuren":                 "belgian tervuren dog",
	"Silky Terriers":                   "australian silky terrier dog",
	"Spinoni Italiani":                 "italian spinone dog",
	"Toy Fox Terriers":                 "toy fox terrier dog",
	"Pointers":                         "english pointer dog",
	"Belgian Sheepdogs":                "belgian shepherd dog",
	"American Eskimo Dogs":             "american eskimo dog",
	"Beaucerons":                       "berger de beauce dog",
	"Boerboels":                        "boerboel dog",
	"Black Russian Terriers":           "black russian terrier dog",
	"American Hairless Terriers":       "american hairless terrier dog",
	"Xoloitzcuintli":                   "xoloitzcuintle dog",
	"Bluetick Coonhounds":              "bluetick coonhound dog",
	"English Toy Spaniels":             "english toy spaniel (black & tan) dog",
	"Pulik":                            "puli dog",
	"Barbets":                          "barbet dog",
	"Redbone Coonhounds":               "redbone coonhound dog",
	"Berger Picards":                   "berger de picard dog",
	"Entlebucher Mountain Dogs":        "entlebuch cattle dog",
	"Treeing Walker Coonhounds":        "treeing walker coonhound dog",
	"Wirehaired Vizslas":               "hungarian wire-haired pointer dog",
	"Pumik":                            "pumi dog",
	"Portuguese Podengo Pequenos":      "portuguese podengo dog",
	"Retrievers (Curly-Coated)":        "curly coated retriever dog",
	"Lowchen":                          "lowchen dog",
	"Petits Bassets Griffons Vendeens": "petit basset griffon vendeen dog",
	"Finnish Lapphunds":                "swedish lapphund dog",
	"Scottish Deerhounds":              "deerhound dog",
	"Plott Hounds":                     "plott hound dog",
	"Glen of Imaal Terriers":           "irish glen of imaal terrier dog",
	"Ibizan Hounds":                    "ibizan podenco dog",
	"Bergamasco Sheepdogs":             "bergamasco shepherd dog",
	"Kuvaszok":                         "kuvasz dog",
	"Komondorok":                       "komondor dog",
	"Cirnechi dell’Etna":               "cirneco dell'etna dog",
	"Pyrenean Shepherds":               "pyrenean sheepdog - smooth faced",
	"American English Coonhounds":      "american english coonhound dog",
	"Chinooks":                         "chinook dog",
}
