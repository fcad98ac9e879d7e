package network

// Network after the Changi extensions open: the CRL reaches Terminal 5,
// the TEL east coast extension runs through to Changi Airport, and the
// old EWL airport branch interchange at Tanah Merah gains a TEL
// platform.

var futureStations = []Station{
	// East-West and Downtown corridor
	{Name: "Tampines", Line: "EWL", X: 7, Y: 4},
	{Name: "Tampines East", Line: "DTL", X: 7.4, Y: 3.6},
	{Name: "Simei", Line: "EWL", X: 7.6, Y: 4.2},
	{Name: "Tanah Merah", Line: "EWL/TECL", X: 8, Y: 4},
	{Name: "Expo", Line: "DTL/TECL", X: 9, Y: 3},
	{Name: "Upper Changi", Line: "DTL", X: 8.6, Y: 3.4},
	{Name: "Bedok", Line: "EWL", X: 6, Y: 4},
	{Name: "Kembangan", Line: "EWL", X: 6.5, Y: 4.5},
	{Name: "Eunos", Line: "EWL", X: 7, Y: 5},
	{Name: "Paya Lebar", Line: "EWL", X: 6, Y: 5},
	{Name: "Aljunied", Line: "EWL", X: 3.5, Y: 6.2},
	{Name: "Kallang", Line: "EWL", X: 3.6, Y: 6},
	{Name: "Lavender", Line: "EWL", X: 3.8, Y: 5.8},
	{Name: "Bugis", Line: "EWL/DTL", X: 4, Y: 5.5},
	{Name: "City Hall", Line: "NSL", X: 4, Y: 6},
	{Name: "Raffles Place", Line: "NSL", X: 3, Y: 6},
	{Name: "Marina Bay", Line: "NSL/TECL/CCL", X: 6, Y: 5},

	// Cross Island Line
	{Name: "Pasir Ris", Line: "EWL/CRL", X: 10, Y: 5},
	{Name: "Pasir Ris East", Line: "CRL", X: 10.2, Y: 4},
	{Name: "Loyang", Line: "CRL", X: 10.4, Y: 3.8},
	{Name: "Aviation Park", Line: "CRL", X: 10.6, Y: 3.5},
	{Name: "Changi Terminal 5", Line: "CRL/TECL", X: 10.8, Y: 3.2},
	{Name: "Ang Mo Kio", Line: "CRL", X: 4, Y: 8.5},
	{Name: "Tavistock", Line: "CRL", X: 5, Y: 8.8},
	{Name: "Serangoon North", Line: "CRL", X: 6, Y: 9},
	{Name: "Hougang", Line: "CRL", X: 7, Y: 9},
	{Name: "Defu", Line: "CRL", X: 7.5, Y: 8.5},
	{Name: "Tampines North", Line: "CRL", X: 7, Y: 5},
	{Name: "Lorong Chuan", Line: "CCL", X: 5, Y: 8},

	// Thomson-East Coast Line extension
	{Name: "Changi Airport", Line: "TECL", X: 10, Y: 2},
	{Name: "Sungei Bedok", Line: "TECL", X: 10.5, Y: 3},
	{Name: "Bedok South", Line: "TECL", X: 10, Y: 3.5},
	{Name: "Bayshore", Line: "TECL", X: 9.5, Y: 4},
	{Name: "Siglap", Line: "TECL", X: 9, Y: 4.5},
	{Name: "Marine Terrace", Line: "TECL", X: 8.5, Y: 5},
	{Name: "Marine Parade", Line: "TECL", X: 8, Y: 5.5},
	{Name: "Tanjong Katong", Line: "TECL", X: 7.5, Y: 6},
	{Name: "Katong Park", Line: "TECL", X: 7, Y: 6.5},
	{Name: "Tanjong Rhu", Line: "TECL", X: 6.5, Y: 7},
	{Name: "Gardens by the Bay", Line: "TECL", X: 5, Y: 4},

	// Circle Line and North-South Line
	{Name: "Dakota", Line: "CCL", X: 5.5, Y: 4.5},
	{Name: "Mountbatten", Line: "CCL", X: 6, Y: 4.7},
	{Name: "Stadium", Line: "CCL", X: 6.2, Y: 4.4},
	{Name: "Nicoll Highway", Line: "CCL", X: 6.5, Y: 4.2},
	{Name: "Promenade", Line: "CCL", X: 6.8, Y: 4},
	{Name: "Bayfront", Line: "CCL", X: 6.9, Y: 3.8},
	{Name: "Bishan", Line: "NSL/CRL", X: 4, Y: 8},
	{Name: "Serangoon", Line: "CCL", X: 6, Y: 8},
	{Name: "Bartley", Line: "CCL", X: 7, Y: 8},
	{Name: "Tai Seng", Line: "CCL", X: 7.5, Y: 7},
	{Name: "MacPherson", Line: "CCL", X: 8, Y: 6.5},
	{Name: "Braddell", Line: "NSL", X: 4, Y: 7},
	{Name: "Toa Payoh", Line: "NSL", X: 4, Y: 7.5},
	{Name: "Novena", Line: "NSL", X: 4, Y: 6.5},
	{Name: "Newton", Line: "NSL", X: 4, Y: 6},
	{Name: "Orchard", Line: "NSL", X: 4, Y: 5.5},
	{Name: "Dhoby Ghaut", Line: "NSL/CCL/DTL", X: 3.5, Y: 5.5},
	{Name: "Marina South Pier", Line: "NSL", X: 6, Y: 2.5},
	{Name: "Somerset", Line: "NSL", X: 3, Y: 5.5},
}

var futureHops = map[string][]Hop{
	// East-West and Downtown corridor
	"Tampines":       {{To: "Pasir Ris", Minutes: 1}, {To: "Tampines East", Minutes: 2}, {To: "Simei", Minutes: 2}},
	"Tampines East":  {{To: "Tampines", Minutes: 2}, {To: "Upper Changi", Minutes: 2}},
	"Upper Changi":   {{To: "Tampines East", Minutes: 2}, {To: "Expo", Minutes: 2}},
	"Simei":          {{To: "Tampines", Minutes: 2}, {To: "Tanah Merah", Minutes: 2}},
	"Tanah Merah":    {{To: "Simei", Minutes: 2}, {To: "Expo", Minutes: 3}, {To: "Bedok", Minutes: 2}},
	"Expo":           {{To: "Upper Changi", Minutes: 2}, {To: "Tanah Merah", Minutes: 3}, {To: "Changi Airport", Minutes: 2}},
	"Changi Airport": {{To: "Expo", Minutes: 2}, {To: "Tanah Merah", Minutes: 5}, {To: "Changi Terminal 5", Minutes: 2}},
	"Bedok":          {{To: "Tanah Merah", Minutes: 2}, {To: "Kembangan", Minutes: 2}},
	"Kembangan":      {{To: "Bedok", Minutes: 2}, {To: "Eunos", Minutes: 2}},
	"Eunos":          {{To: "Kembangan", Minutes: 2}, {To: "Paya Lebar", Minutes: 2}},
	"Paya Lebar":     {{To: "Eunos", Minutes: 2}, {To: "Aljunied", Minutes: 2}, {To: "Dakota", Minutes: 2}},
	"Aljunied":       {{To: "Paya Lebar", Minutes: 2}, {To: "Kallang", Minutes: 2}},
	"Kallang":        {{To: "Aljunied", Minutes: 2}, {To: "Lavender", Minutes: 2}},
	"Lavender":       {{To: "Kallang", Minutes: 2}, {To: "Bugis", Minutes: 2}},
	"Bugis":          {{To: "Lavender", Minutes: 2}, {To: "City Hall", Minutes: 2}, {To: "Promenade", Minutes: 2}},
	"City Hall":      {{To: "Bugis", Minutes: 2}, {To: "Raffles Place", Minutes: 2}},
	"Raffles Place":  {{To: "City Hall", Minutes: 2}, {To: "Marina Bay", Minutes: 3}},
	"Marina Bay":     {{To: "Raffles Place", Minutes: 3}, {To: "Gardens by the Bay", Minutes: 2}, {To: "Bayfront", Minutes: 2}},
	"Gardens by the Bay": {{To: "Marina Bay", Minutes: 2}, {To: "Tanjong Rhu", Minutes: 2}},

	// Thomson-East Coast Line extension
	"Sungei Bedok":      {{To: "Changi Terminal 5", Minutes: 2}, {To: "Bedok South", Minutes: 2}},
	"Bedok South":       {{To: "Sungei Bedok", Minutes: 2}, {To: "Bayshore", Minutes: 2}},
	"Bayshore":          {{To: "Bedok South", Minutes: 2}, {To: "Siglap", Minutes: 2}},
	"Siglap":            {{To: "Bayshore", Minutes: 2}, {To: "Marine Terrace", Minutes: 2}},
	"Marine Terrace":    {{To: "Siglap", Minutes: 2}, {To: "Marine Parade", Minutes: 2}},
	"Marine Parade":     {{To: "Marine Terrace", Minutes: 2}, {To: "Tanjong Katong", Minutes: 2}},
	"Tanjong Katong":    {{To: "Marine Parade", Minutes: 2}, {To: "Katong Park", Minutes: 2}},
	"Katong Park":       {{To: "Tanjong Katong", Minutes: 2}, {To: "Tanjong Rhu", Minutes: 2}},
	"Tanjong Rhu":       {{To: "Katong Park", Minutes: 2}, {To: "Gardens by the Bay", Minutes: 2}},
	"Changi Terminal 5": {{To: "Changi Airport", Minutes: 2}, {To: "Aviation Park", Minutes: 2}, {To: "Sungei Bedok", Minutes: 2}},

	// Cross Island Line branch
	"Pasir Ris":       {{To: "Tampines", Minutes: 2}, {To: "Pasir Ris East", Minutes: 2}},
	"Pasir Ris East":  {{To: "Pasir Ris", Minutes: 2}, {To: "Loyang", Minutes: 2}},
	"Loyang":          {{To: "Pasir Ris East", Minutes: 2}, {To: "Aviation Park", Minutes: 2}},
	"Aviation Park":   {{To: "Loyang", Minutes: 2}, {To: "Changi Terminal 5", Minutes: 2}},
	"Ang Mo Kio":      {{To: "Bishan", Minutes: 2}, {To: "Tavistock", Minutes: 2}},
	"Tavistock":       {{To: "Ang Mo Kio", Minutes: 2}, {To: "Serangoon North", Minutes: 2}},
	"Serangoon North": {{To: "Tavistock", Minutes: 2}, {To: "Hougang", Minutes: 3}},
	"Hougang":         {{To: "Serangoon North", Minutes: 3}, {To: "Defu", Minutes: 2}},
	"Defu":            {{To: "Hougang", Minutes: 2}, {To: "Tampines North", Minutes: 3}},
	"Tampines North":  {{To: "Defu", Minutes: 3}, {To: "Pasir Ris", Minutes: 2}},
	"Lorong Chuan":    {{To: "Bartley", Minutes: 2}, {To: "Serangoon", Minutes: 2}},
	"Bishan":          {{To: "Ang Mo Kio", Minutes: 2}, {To: "Serangoon", Minutes: 3}, {To: "Bartley", Minutes: 3}},
	"Serangoon":       {{To: "Bishan", Minutes: 3}, {To: "Lorong Chuan", Minutes: 2}},
	"Bartley":         {{To: "Bishan", Minutes: 3}, {To: "Lorong Chuan", Minutes: 2}, {To: "Tai Seng", Minutes: 2}},
	"Tai Seng":        {{To: "Bartley", Minutes: 2}, {To: "MacPherson", Minutes: 2}},
	"MacPherson":      {{To: "Tai Seng", Minutes: 2}},

	// Circle Line and North-South Line
	"Dakota":            {{To: "Paya Lebar", Minutes: 2}, {To: "Mountbatten", Minutes: 2}},
	"Mountbatten":       {{To: "Dakota", Minutes: 2}, {To: "Stadium", Minutes: 2}},
	"Stadium":           {{To: "Mountbatten", Minutes: 2}, {To: "Nicoll Highway", Minutes: 2}},
	"Nicoll Highway":    {{To: "Stadium", Minutes: 2}, {To: "Promenade", Minutes: 2}},
	"Promenade":         {{To: "Nicoll Highway", Minutes: 2}, {To: "Bayfront", Minutes: 2}},
	"Bayfront":          {{To: "Promenade", Minutes: 2}, {To: "Marina Bay", Minutes: 2}},
	"Braddell":          {{To: "Toa Payoh", Minutes: 2}, {To: "Bishan", Minutes: 2}},
	"Toa Payoh":         {{To: "Novena", Minutes: 2}, {To: "Braddell", Minutes: 2}},
	"Novena":            {{To: "Newton", Minutes: 2}, {To: "Toa Payoh", Minutes: 2}},
	"Newton":            {{To: "Orchard", Minutes: 2}, {To: "Novena", Minutes: 2}},
	"Orchard":           {{To: "Dhoby Ghaut", Minutes: 2}, {To: "Newton", Minutes: 2}},
	"Dhoby Ghaut":       {{To: "Orchard", Minutes: 2}, {To: "City Hall", Minutes: 2}},
	"Marina South Pier": {{To: "Marina Bay", Minutes: 2}},
}
