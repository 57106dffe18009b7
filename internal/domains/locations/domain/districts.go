package domain

// districtCities is the reference table of Sri Lankan districts and the cities served in each.
var districtCities = map[string][]string{
	"Ampara":       {"Ampara", "Kalmunai", "Sainthamaruthu", "Akkaraipattu"},
	"Anuradhapura": {"Anuradhapura", "Kekirawa", "Medawachchiya", "Thambuttegama"},
	"Badulla":      {"Badulla", "Bandarawela", "Haputale", "Welimada"},
	"Batticaloa":   {"Batticaloa", "Eravur", "Kattankudy", "Valaichchenai"},
	"Colombo":      {"Colombo", "Dehiwala-Mount Lavinia", "Moratuwa", "Sri Jayawardenepura Kotte", "Kolonnawa", "Maharagama"},
	"Galle":        {"Galle", "Ambalangoda", "Hikkaduwa", "Elpitiya"},
	"Gampaha":      {"Gampaha", "Negombo", "Ja-Ela", "Wattala", "Kadawatha", "Minuwangoda"},
	"Hambantota":   {"Hambantota", "Tangalle", "Tissamaharama", "Ambalantota"},
	"Jaffna":       {"Jaffna", "Chavakachcheri", "Point Pedro", "Nallur"},
	"Kalutara":     {"Kalutara", "Panadura", "Horana", "Beruwala"},
	"Kandy":        {"Kandy", "Gampola", "Nawalapitiya", "Peradeniya", "Katugastota"},
	"Kegalle":      {"Kegalle", "Mawanella", "Warakapola", "Rambukkana"},
	"Kilinochchi":  {"Kilinochchi", "Paranthan", "Pooneryn"},
	"Kurunegala":   {"Kurunegala", "Kuliyapitiya", "Narammala", "Pannala"},
	"Mannar":       {"Mannar", "Madhu", "Pesalai"},
	"Matale":       {"Matale", "Dambulla", "Galewela", "Sigiriya"},
	"Matara":       {"Matara", "Weligama", "Akuressa", "Dikwella"},
	"Monaragala":   {"Monaragala", "Wellawaya", "Bibile", "Kataragama"},
	"Mullaitivu":   {"Mullaitivu", "Puthukkudiyiruppu", "Oddusuddan"},
	"Nuwara Eliya": {"Nuwara Eliya", "Hatton", "Talawakele", "Maskeliya"},
	"Polonnaruwa":  {"Polonnaruwa", "Kaduruwela", "Hingurakgoda", "Medirigiriya"},
	"Puttalam":     {"Puttalam", "Chilaw", "Wennappuwa", "Marawila"},
	"Ratnapura":    {"Ratnapura", "Balangoda", "Embilipitiya", "Pelmadulla"},
	"Trincomalee":  {"Trincomalee", "Kinniya", "Kantale", "Mutur"},
	"Vavuniya":     {"Vavuniya", "Cheddikulam", "Nedunkeni"},
}
