package network

// Current network. Line labels follow the operator's map; interchanges
// carry the labels of every line calling there. Adjacency is directed
// as surveyed, which leaves a few one-way service quirks in place.

var todayStations = []Station{
	// East-West and Downtown corridor
	{Name: "Changi Airport", Line: "EWL", X: 10, Y: 2},
	{Name: "Expo", Line: "EWL", X: 9, Y: 3},
	{Name: "Upper Changi", Line: "DTL", X: 8.6, Y: 3.4},
	{Name: "Tanah Merah", Line: "EWL", X: 8, Y: 4},
	{Name: "Simei", Line: "EWL", X: 7.6, Y: 4.2},
	{Name: "Tampines", Line: "EWL", X: 7, Y: 4},
	{Name: "Tampines East", Line: "DTL", X: 7.4, Y: 3.6},
	{Name: "Paya Lebar", Line: "EWL", X: 6, Y: 5},
	{Name: "Bugis", Line: "DTL/EWL", X: 4, Y: 5.5},
	{Name: "City Hall", Line: "NSL", X: 4, Y: 6},
	{Name: "Lavender", Line: "EWL", X: 3.8, Y: 5.8},
	{Name: "Kallang", Line: "EWL", X: 3.6, Y: 6},
	{Name: "Aljunied", Line: "EWL", X: 3.5, Y: 6.2},
	{Name: "Eunos", Line: "EWL", X: 7, Y: 5},
	{Name: "Kembangan", Line: "EWL", X: 6.5, Y: 4.5},
	{Name: "Bedok", Line: "EWL", X: 6, Y: 4},

	// North-South and Circle corridor
	{Name: "Bishan", Line: "NSL/CCL", X: 4, Y: 8},
	{Name: "Lorong Chuan", Line: "CCL", X: 5, Y: 8},
	{Name: "Serangoon", Line: "CCL", X: 6, Y: 8},
	{Name: "Bartley", Line: "CCL", X: 7, Y: 8},
	{Name: "Tai Seng", Line: "CCL", X: 7.5, Y: 7},
	{Name: "MacPherson", Line: "CCL", X: 8, Y: 6.5},
	{Name: "Braddell", Line: "NSL", X: 4, Y: 7},
	{Name: "Toa Payoh", Line: "NSL", X: 4.5, Y: 6.5},
	{Name: "Novena", Line: "NSL", X: 5, Y: 6},
	{Name: "Newton", Line: "NSL", X: 5.5, Y: 5.8},
	{Name: "Somerset", Line: "NSL", X: 5.7, Y: 5.5},
	{Name: "Dhoby Ghaut", Line: "NSL/EWL", X: 5.8, Y: 5.2},
	{Name: "Orchard", Line: "NSL", X: 3, Y: 7},
	{Name: "Raffles Place", Line: "NSL/TECL", X: 3, Y: 5.5},

	// Circle Line towards Marina Bay
	{Name: "Dakota", Line: "CCL", X: 5.5, Y: 4.5},
	{Name: "Mountbatten", Line: "CCL", X: 6, Y: 4.7},
	{Name: "Stadium", Line: "CCL", X: 6.2, Y: 4.4},
	{Name: "Nicoll Highway", Line: "CCL", X: 6.5, Y: 4.2},
	{Name: "Promenade", Line: "CCL", X: 6.8, Y: 4},
	{Name: "Bayfront", Line: "CCL", X: 6.9, Y: 3.8},

	// Thomson-East Coast Line
	{Name: "Marina Bay", Line: "TECL", X: 6, Y: 5},
	{Name: "Gardens by the Bay", Line: "TECL", X: 5, Y: 4},
}

var todayHops = map[string][]Hop{
	// East-West and Downtown corridor from Tampines
	"Tampines":      {{To: "Tampines East", Minutes: 2}, {To: "Simei", Minutes: 2}},
	"Tampines East": {{To: "Upper Changi", Minutes: 2}, {To: "Tampines", Minutes: 2}},
	"Upper Changi":  {{To: "Expo", Minutes: 2}, {To: "Tampines East", Minutes: 2}},
	"Simei":         {{To: "Tanah Merah", Minutes: 2}, {To: "Tampines", Minutes: 2}},
	"Tanah Merah":   {{To: "Expo", Minutes: 3}, {To: "Bedok", Minutes: 3}},
	"Expo":          {{To: "Changi Airport", Minutes: 2}, {To: "Tanah Merah", Minutes: 3}},
	"Changi Airport": {{To: "Expo", Minutes: 2}},

	"Paya Lebar": {{To: "MacPherson", Minutes: 2}, {To: "Eunos", Minutes: 2}, {To: "Dakota", Minutes: 2}},
	"Bugis":      {{To: "City Hall", Minutes: 2}, {To: "Lavender", Minutes: 2}, {To: "Promenade", Minutes: 2}},
	"City Hall":  {{To: "Bugis", Minutes: 2}, {To: "Dhoby Ghaut", Minutes: 2}, {To: "Raffles Place", Minutes: 2}},
	"Orchard":    {{To: "City Hall", Minutes: 2}, {To: "Somerset", Minutes: 2}, {To: "Newton", Minutes: 2}},
	"Somerset":   {{To: "Orchard", Minutes: 2}, {To: "Dhoby Ghaut", Minutes: 2}},
	"Dhoby Ghaut": {{To: "Somerset", Minutes: 2}, {To: "City Hall", Minutes: 2}},
	"Lavender":   {{To: "Bugis", Minutes: 2}, {To: "Kallang", Minutes: 2}},
	"Kallang":    {{To: "Lavender", Minutes: 2}, {To: "Aljunied", Minutes: 2}},
	"Aljunied":   {{To: "Kallang", Minutes: 2}, {To: "Paya Lebar", Minutes: 2}},
	"Eunos":      {{To: "Paya Lebar", Minutes: 2}, {To: "Kembangan", Minutes: 2}},
	"Kembangan":  {{To: "Eunos", Minutes: 2}, {To: "Bedok", Minutes: 2}},
	"Bedok":      {{To: "Kembangan", Minutes: 2}, {To: "Tanah Merah", Minutes: 3}},

	// Circle and North-South routes from Bishan
	"Bishan":       {{To: "Lorong Chuan", Minutes: 3}, {To: "Braddell", Minutes: 3}},
	"Lorong Chuan": {{To: "Bishan", Minutes: 3}, {To: "Serangoon", Minutes: 2}},
	"Serangoon":    {{To: "Lorong Chuan", Minutes: 2}, {To: "Bartley", Minutes: 2}},
	"Bartley":      {{To: "Serangoon", Minutes: 2}, {To: "Tai Seng", Minutes: 2}},
	"Tai Seng":     {{To: "Bartley", Minutes: 2}, {To: "MacPherson", Minutes: 2}},
	"MacPherson":   {{To: "Tai Seng", Minutes: 2}, {To: "Paya Lebar", Minutes: 2}},

	"Braddell":  {{To: "Bishan", Minutes: 3}, {To: "Toa Payoh", Minutes: 2}},
	"Toa Payoh": {{To: "Braddell", Minutes: 2}, {To: "Novena", Minutes: 2}},
	"Novena":    {{To: "Toa Payoh", Minutes: 2}, {To: "Newton", Minutes: 2}},
	"Newton":    {{To: "Novena", Minutes: 2}, {To: "Orchard", Minutes: 2}},

	// Circle Line from Paya Lebar to Marina Bay
	"Dakota":         {{To: "Paya Lebar", Minutes: 2}, {To: "Mountbatten", Minutes: 2}},
	"Mountbatten":    {{To: "Dakota", Minutes: 2}, {To: "Stadium", Minutes: 2}},
	"Stadium":        {{To: "Mountbatten", Minutes: 2}, {To: "Nicoll Highway", Minutes: 2}},
	"Nicoll Highway": {{To: "Stadium", Minutes: 2}, {To: "Promenade", Minutes: 2}},
	"Promenade":      {{To: "Nicoll Highway", Minutes: 2}, {To: "Bayfront", Minutes: 2}},
	"Bayfront":       {{To: "Promenade", Minutes: 2}, {To: "Marina Bay", Minutes: 2}},

	// Thomson-East Coast Line
	"Marina Bay":         {{To: "Raffles Place", Minutes: 3}, {To: "Gardens by the Bay", Minutes: 2}},
	"Gardens by the Bay": {},
}
