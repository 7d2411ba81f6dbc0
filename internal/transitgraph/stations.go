package transitgraph

import "github.com/yourorg/wayfindsg/internal/geo"

// LineID identifies a rail line (MRT or LRT).
type LineID string

const (
	NorthSouthLine      LineID = "NSL"
	EastWestLine        LineID = "EWL"
	NorthEastLine       LineID = "NEL"
	CircleLine          LineID = "CCL"
	DowntownLine        LineID = "DTL"
	ThomsonEastCoast    LineID = "TEL"
	BukitPanjangLRT     LineID = "BPL"
)

// Line carries display metadata for a rail line.
type Line struct {
	ID    LineID `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Station is an immutable static record for one rail station. Interchange
// stations appear exactly once in the table, listing every line they serve.
type Station struct {
	Code  string         `json:"code"`
	Name  string         `json:"name"`
	Coord geo.Coordinate `json:"coordinates"`
	Lines []LineID       `json:"lines"`
}

// Interchange reports whether the station is served by more than one line.
func (s Station) Interchange() bool {
	return len(s.Lines) > 1
}

var lines = []Line{
	{ID: NorthSouthLine, Name: "North South Line", Color: "#D42E12"},
	{ID: EastWestLine, Name: "East West Line", Color: "#009645"},
	{ID: NorthEastLine, Name: "North East Line", Color: "#9900AA"},
	{ID: CircleLine, Name: "Circle Line", Color: "#FA9E0D"},
	{ID: DowntownLine, Name: "Downtown Line", Color: "#005EC4"},
	{ID: ThomsonEastCoast, Name: "Thomson-East Coast Line", Color: "#9D5B25"},
	{ID: BukitPanjangLRT, Name: "Bukit Panjang LRT", Color: "#748477"},
}

// stationTable is the static network snapshot. Declaration order is load
// bearing: the ordered subsequence of stations on a line (in table order) is
// what StopCountBetween indexes into, so stations of a line are declared
// following the direction of travel. Interchange stations keep the position
// of their first line.
var stationTable = []Station{
	// North South Line (NS1 -> NS28)
	{Code: "NS1", Name: "Jurong East", Coord: geo.Coordinate{Lat: 1.333152, Lng: 103.742286}, Lines: []LineID{EastWestLine, NorthSouthLine}},
	{Code: "NS2", Name: "Bukit Batok", Coord: geo.Coordinate{Lat: 1.349069, Lng: 103.749596}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS3", Name: "Bukit Gombak", Coord: geo.Coordinate{Lat: 1.358702, Lng: 103.751791}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS4", Name: "Choa Chu Kang", Coord: geo.Coordinate{Lat: 1.385417, Lng: 103.744316}, Lines: []LineID{NorthSouthLine, BukitPanjangLRT}},
	{Code: "NS5", Name: "Yew Tee", Coord: geo.Coordinate{Lat: 1.397383, Lng: 103.747523}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS7", Name: "Kranji", Coord: geo.Coordinate{Lat: 1.425177, Lng: 103.761942}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS8", Name: "Marsiling", Coord: geo.Coordinate{Lat: 1.432579, Lng: 103.774291}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS9", Name: "Woodlands", Coord: geo.Coordinate{Lat: 1.436984, Lng: 103.786406}, Lines: []LineID{NorthSouthLine, ThomsonEastCoast}},
	{Code: "NS10", Name: "Admiralty", Coord: geo.Coordinate{Lat: 1.440597, Lng: 103.800970}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS11", Name: "Sembawang", Coord: geo.Coordinate{Lat: 1.449135, Lng: 103.820097}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS12", Name: "Canberra", Coord: geo.Coordinate{Lat: 1.443035, Lng: 103.829598}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS13", Name: "Yishun", Coord: geo.Coordinate{Lat: 1.429443, Lng: 103.835005}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS14", Name: "Khatib", Coord: geo.Coordinate{Lat: 1.417245, Lng: 103.832946}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS15", Name: "Yio Chu Kang", Coord: geo.Coordinate{Lat: 1.381765, Lng: 103.844923}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS16", Name: "Ang Mo Kio", Coord: geo.Coordinate{Lat: 1.369933, Lng: 103.849558}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS17", Name: "Bishan", Coord: geo.Coordinate{Lat: 1.351236, Lng: 103.849088}, Lines: []LineID{NorthSouthLine, CircleLine}},
	{Code: "NS18", Name: "Braddell", Coord: geo.Coordinate{Lat: 1.340434, Lng: 103.846801}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS19", Name: "Toa Payoh", Coord: geo.Coordinate{Lat: 1.332707, Lng: 103.847062}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS20", Name: "Novena", Coord: geo.Coordinate{Lat: 1.320417, Lng: 103.843821}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS21", Name: "Newton", Coord: geo.Coordinate{Lat: 1.312734, Lng: 103.838740}, Lines: []LineID{NorthSouthLine, DowntownLine}},
	{Code: "NS22", Name: "Orchard", Coord: geo.Coordinate{Lat: 1.304120, Lng: 103.832226}, Lines: []LineID{NorthSouthLine, ThomsonEastCoast}},
	{Code: "NS23", Name: "Somerset", Coord: geo.Coordinate{Lat: 1.300331, Lng: 103.839009}, Lines: []LineID{NorthSouthLine}},
	{Code: "NS24", Name: "Dhoby Ghaut", Coord: geo.Coordinate{Lat: 1.299343, Lng: 103.845490}, Lines: []LineID{NorthSouthLine, NorthEastLine, CircleLine}},
	{Code: "NS25", Name: "City Hall", Coord: geo.Coordinate{Lat: 1.292936, Lng: 103.852585}, Lines: []LineID{NorthSouthLine, EastWestLine}},
	{Code: "NS26", Name: "Raffles Place", Coord: geo.Coordinate{Lat: 1.284001, Lng: 103.851455}, Lines: []LineID{NorthSouthLine, EastWestLine}},
	{Code: "NS27", Name: "Marina Bay", Coord: geo.Coordinate{Lat: 1.276480, Lng: 103.854581}, Lines: []LineID{NorthSouthLine, CircleLine, ThomsonEastCoast}},
	{Code: "NS28", Name: "Marina South Pier", Coord: geo.Coordinate{Lat: 1.271422, Lng: 103.863260}, Lines: []LineID{NorthSouthLine}},

	// East West Line (EW1 -> EW27; interchanges above keep their NSL slot)
	{Code: "EW1", Name: "Pasir Ris", Coord: geo.Coordinate{Lat: 1.373090, Lng: 103.949287}, Lines: []LineID{EastWestLine}},
	{Code: "EW2", Name: "Tampines", Coord: geo.Coordinate{Lat: 1.354653, Lng: 103.945045}, Lines: []LineID{EastWestLine, DowntownLine}},
	{Code: "EW3", Name: "Simei", Coord: geo.Coordinate{Lat: 1.343237, Lng: 103.953343}, Lines: []LineID{EastWestLine}},
	{Code: "EW4", Name: "Tanah Merah", Coord: geo.Coordinate{Lat: 1.327309, Lng: 103.946479}, Lines: []LineID{EastWestLine}},
	{Code: "EW5", Name: "Bedok", Coord: geo.Coordinate{Lat: 1.324043, Lng: 103.930205}, Lines: []LineID{EastWestLine}},
	{Code: "EW6", Name: "Kembangan", Coord: geo.Coordinate{Lat: 1.321034, Lng: 103.912932}, Lines: []LineID{EastWestLine}},
	{Code: "EW7", Name: "Eunos", Coord: geo.Coordinate{Lat: 1.319779, Lng: 103.903252}, Lines: []LineID{EastWestLine}},
	{Code: "EW8", Name: "Paya Lebar", Coord: geo.Coordinate{Lat: 1.317767, Lng: 103.892381}, Lines: []LineID{EastWestLine, CircleLine}},
	{Code: "EW9", Name: "Aljunied", Coord: geo.Coordinate{Lat: 1.316433, Lng: 103.882906}, Lines: []LineID{EastWestLine}},
	{Code: "EW10", Name: "Kallang", Coord: geo.Coordinate{Lat: 1.311532, Lng: 103.871372}, Lines: []LineID{EastWestLine}},
	{Code: "EW11", Name: "Lavender", Coord: geo.Coordinate{Lat: 1.307577, Lng: 103.863155}, Lines: []LineID{EastWestLine}},
	{Code: "EW12", Name: "Bugis", Coord: geo.Coordinate{Lat: 1.300929, Lng: 103.855996}, Lines: []LineID{EastWestLine, DowntownLine}},
	{Code: "EW15", Name: "Tanjong Pagar", Coord: geo.Coordinate{Lat: 1.276450, Lng: 103.845892}, Lines: []LineID{EastWestLine}},
	{Code: "EW16", Name: "Outram Park", Coord: geo.Coordinate{Lat: 1.280225, Lng: 103.839903}, Lines: []LineID{EastWestLine, NorthEastLine, ThomsonEastCoast}},
	{Code: "EW17", Name: "Tiong Bahru", Coord: geo.Coordinate{Lat: 1.286555, Lng: 103.826956}, Lines: []LineID{EastWestLine}},
	{Code: "EW18", Name: "Redhill", Coord: geo.Coordinate{Lat: 1.289674, Lng: 103.816787}, Lines: []LineID{EastWestLine}},
	{Code: "EW19", Name: "Queenstown", Coord: geo.Coordinate{Lat: 1.294867, Lng: 103.805902}, Lines: []LineID{EastWestLine}},
	{Code: "EW20", Name: "Commonwealth", Coord: geo.Coordinate{Lat: 1.302439, Lng: 103.798326}, Lines: []LineID{EastWestLine}},
	{Code: "EW21", Name: "Buona Vista", Coord: geo.Coordinate{Lat: 1.307181, Lng: 103.790046}, Lines: []LineID{EastWestLine, CircleLine}},
	{Code: "EW22", Name: "Dover", Coord: geo.Coordinate{Lat: 1.311414, Lng: 103.778596}, Lines: []LineID{EastWestLine}},
	{Code: "EW23", Name: "Clementi", Coord: geo.Coordinate{Lat: 1.315196, Lng: 103.765231}, Lines: []LineID{EastWestLine}},
	{Code: "EW25", Name: "Chinese Garden", Coord: geo.Coordinate{Lat: 1.342617, Lng: 103.732596}, Lines: []LineID{EastWestLine}},
	{Code: "EW26", Name: "Lakeside", Coord: geo.Coordinate{Lat: 1.344264, Lng: 103.720797}, Lines: []LineID{EastWestLine}},
	{Code: "EW27", Name: "Boon Lay", Coord: geo.Coordinate{Lat: 1.338666, Lng: 103.706065}, Lines: []LineID{EastWestLine}},

	// North East Line (NE1 -> NE17)
	{Code: "NE1", Name: "HarbourFront", Coord: geo.Coordinate{Lat: 1.265332, Lng: 103.821412}, Lines: []LineID{NorthEastLine, CircleLine}},
	{Code: "NE4", Name: "Chinatown", Coord: geo.Coordinate{Lat: 1.284568, Lng: 103.843756}, Lines: []LineID{NorthEastLine, DowntownLine}},
	{Code: "NE5", Name: "Clarke Quay", Coord: geo.Coordinate{Lat: 1.288617, Lng: 103.846697}, Lines: []LineID{NorthEastLine}},
	{Code: "NE7", Name: "Little India", Coord: geo.Coordinate{Lat: 1.306691, Lng: 103.849254}, Lines: []LineID{NorthEastLine, DowntownLine}},
	{Code: "NE8", Name: "Farrer Park", Coord: geo.Coordinate{Lat: 1.312679, Lng: 103.854872}, Lines: []LineID{NorthEastLine}},
	{Code: "NE9", Name: "Boon Keng", Coord: geo.Coordinate{Lat: 1.319925, Lng: 103.861635}, Lines: []LineID{NorthEastLine}},
	{Code: "NE10", Name: "Potong Pasir", Coord: geo.Coordinate{Lat: 1.331215, Lng: 103.868966}, Lines: []LineID{NorthEastLine}},
	{Code: "NE11", Name: "Woodleigh", Coord: geo.Coordinate{Lat: 1.339180, Lng: 103.870583}, Lines: []LineID{NorthEastLine}},
	{Code: "NE12", Name: "Serangoon", Coord: geo.Coordinate{Lat: 1.349862, Lng: 103.873635}, Lines: []LineID{NorthEastLine, CircleLine}},
	{Code: "NE13", Name: "Kovan", Coord: geo.Coordinate{Lat: 1.360214, Lng: 103.885074}, Lines: []LineID{NorthEastLine}},
	{Code: "NE14", Name: "Hougang", Coord: geo.Coordinate{Lat: 1.371292, Lng: 103.892161}, Lines: []LineID{NorthEastLine}},
	{Code: "NE15", Name: "Buangkok", Coord: geo.Coordinate{Lat: 1.382877, Lng: 103.892887}, Lines: []LineID{NorthEastLine}},
	{Code: "NE16", Name: "Sengkang", Coord: geo.Coordinate{Lat: 1.391682, Lng: 103.895475}, Lines: []LineID{NorthEastLine}},
	{Code: "NE17", Name: "Punggol", Coord: geo.Coordinate{Lat: 1.405191, Lng: 103.902367}, Lines: []LineID{NorthEastLine}},

	// Circle Line (CC1 -> CC29)
	{Code: "CC2", Name: "Bras Basah", Coord: geo.Coordinate{Lat: 1.296931, Lng: 103.850631}, Lines: []LineID{CircleLine}},
	{Code: "CC3", Name: "Esplanade", Coord: geo.Coordinate{Lat: 1.293436, Lng: 103.855381}, Lines: []LineID{CircleLine}},
	{Code: "CC4", Name: "Promenade", Coord: geo.Coordinate{Lat: 1.293131, Lng: 103.861064}, Lines: []LineID{CircleLine, DowntownLine}},
	{Code: "CC5", Name: "Nicoll Highway", Coord: geo.Coordinate{Lat: 1.299697, Lng: 103.863611}, Lines: []LineID{CircleLine}},
	{Code: "CC6", Name: "Stadium", Coord: geo.Coordinate{Lat: 1.302847, Lng: 103.875417}, Lines: []LineID{CircleLine}},
	{Code: "CC7", Name: "Mountbatten", Coord: geo.Coordinate{Lat: 1.306306, Lng: 103.882531}, Lines: []LineID{CircleLine}},
	{Code: "CC8", Name: "Dakota", Coord: geo.Coordinate{Lat: 1.308288, Lng: 103.888500}, Lines: []LineID{CircleLine}},
	{Code: "CC10", Name: "MacPherson", Coord: geo.Coordinate{Lat: 1.326584, Lng: 103.889944}, Lines: []LineID{CircleLine, DowntownLine}},
	{Code: "CC11", Name: "Tai Seng", Coord: geo.Coordinate{Lat: 1.335684, Lng: 103.887744}, Lines: []LineID{CircleLine}},
	{Code: "CC12", Name: "Bartley", Coord: geo.Coordinate{Lat: 1.342923, Lng: 103.879757}, Lines: []LineID{CircleLine}},
	{Code: "CC14", Name: "Lorong Chuan", Coord: geo.Coordinate{Lat: 1.351636, Lng: 103.864064}, Lines: []LineID{CircleLine}},
	{Code: "CC16", Name: "Marymount", Coord: geo.Coordinate{Lat: 1.348653, Lng: 103.839347}, Lines: []LineID{CircleLine}},
	{Code: "CC17", Name: "Caldecott", Coord: geo.Coordinate{Lat: 1.337651, Lng: 103.839542}, Lines: []LineID{CircleLine, ThomsonEastCoast}},
	{Code: "CC19", Name: "Botanic Gardens", Coord: geo.Coordinate{Lat: 1.322387, Lng: 103.815420}, Lines: []LineID{CircleLine, DowntownLine}},
	{Code: "CC20", Name: "Farrer Road", Coord: geo.Coordinate{Lat: 1.317320, Lng: 103.807464}, Lines: []LineID{CircleLine}},
	{Code: "CC21", Name: "Holland Village", Coord: geo.Coordinate{Lat: 1.311192, Lng: 103.796160}, Lines: []LineID{CircleLine}},
	{Code: "CC23", Name: "one-north", Coord: geo.Coordinate{Lat: 1.299671, Lng: 103.787320}, Lines: []LineID{CircleLine}},
	{Code: "CC24", Name: "Kent Ridge", Coord: geo.Coordinate{Lat: 1.293633, Lng: 103.784500}, Lines: []LineID{CircleLine}},
	{Code: "CC25", Name: "Haw Par Villa", Coord: geo.Coordinate{Lat: 1.282500, Lng: 103.781900}, Lines: []LineID{CircleLine}},
	{Code: "CC26", Name: "Pasir Panjang", Coord: geo.Coordinate{Lat: 1.276111, Lng: 103.791480}, Lines: []LineID{CircleLine}},
	{Code: "CC27", Name: "Labrador Park", Coord: geo.Coordinate{Lat: 1.272267, Lng: 103.802986}, Lines: []LineID{CircleLine}},
	{Code: "CC28", Name: "Telok Blangah", Coord: geo.Coordinate{Lat: 1.270769, Lng: 103.809878}, Lines: []LineID{CircleLine}},

	// Downtown Line (DT1 -> DT35)
	{Code: "DT1", Name: "Bukit Panjang", Coord: geo.Coordinate{Lat: 1.378422, Lng: 103.762245}, Lines: []LineID{DowntownLine, BukitPanjangLRT}},
	{Code: "DT2", Name: "Cashew", Coord: geo.Coordinate{Lat: 1.369279, Lng: 103.764540}, Lines: []LineID{DowntownLine}},
	{Code: "DT3", Name: "Hillview", Coord: geo.Coordinate{Lat: 1.362308, Lng: 103.767452}, Lines: []LineID{DowntownLine}},
	{Code: "DT5", Name: "Beauty World", Coord: geo.Coordinate{Lat: 1.341310, Lng: 103.775869}, Lines: []LineID{DowntownLine}},
	{Code: "DT6", Name: "King Albert Park", Coord: geo.Coordinate{Lat: 1.335559, Lng: 103.783341}, Lines: []LineID{DowntownLine}},
	{Code: "DT7", Name: "Sixth Avenue", Coord: geo.Coordinate{Lat: 1.330788, Lng: 103.797004}, Lines: []LineID{DowntownLine}},
	{Code: "DT8", Name: "Tan Kah Kee", Coord: geo.Coordinate{Lat: 1.325966, Lng: 103.807901}, Lines: []LineID{DowntownLine}},
	{Code: "DT10", Name: "Stevens", Coord: geo.Coordinate{Lat: 1.320009, Lng: 103.825963}, Lines: []LineID{DowntownLine, ThomsonEastCoast}},
	{Code: "DT13", Name: "Rochor", Coord: geo.Coordinate{Lat: 1.303601, Lng: 103.852581}, Lines: []LineID{DowntownLine}},
	{Code: "DT16", Name: "Bayfront", Coord: geo.Coordinate{Lat: 1.281874, Lng: 103.859073}, Lines: []LineID{DowntownLine, CircleLine}},
	{Code: "DT17", Name: "Downtown", Coord: geo.Coordinate{Lat: 1.279560, Lng: 103.852933}, Lines: []LineID{DowntownLine}},
	{Code: "DT18", Name: "Telok Ayer", Coord: geo.Coordinate{Lat: 1.282285, Lng: 103.848482}, Lines: []LineID{DowntownLine}},
	{Code: "DT20", Name: "Fort Canning", Coord: geo.Coordinate{Lat: 1.292600, Lng: 103.844400}, Lines: []LineID{DowntownLine}},
	{Code: "DT21", Name: "Bencoolen", Coord: geo.Coordinate{Lat: 1.298508, Lng: 103.850102}, Lines: []LineID{DowntownLine}},
	{Code: "DT22", Name: "Jalan Besar", Coord: geo.Coordinate{Lat: 1.305333, Lng: 103.855297}, Lines: []LineID{DowntownLine}},
	{Code: "DT23", Name: "Bendemeer", Coord: geo.Coordinate{Lat: 1.313900, Lng: 103.862900}, Lines: []LineID{DowntownLine}},
	{Code: "DT24", Name: "Geylang Bahru", Coord: geo.Coordinate{Lat: 1.321300, Lng: 103.871400}, Lines: []LineID{DowntownLine}},
	{Code: "DT25", Name: "Mattar", Coord: geo.Coordinate{Lat: 1.327056, Lng: 103.883069}, Lines: []LineID{DowntownLine}},
	{Code: "DT27", Name: "Ubi", Coord: geo.Coordinate{Lat: 1.330000, Lng: 103.899000}, Lines: []LineID{DowntownLine}},
	{Code: "DT28", Name: "Kaki Bukit", Coord: geo.Coordinate{Lat: 1.335000, Lng: 103.909000}, Lines: []LineID{DowntownLine}},
	{Code: "DT29", Name: "Bedok North", Coord: geo.Coordinate{Lat: 1.335000, Lng: 103.918000}, Lines: []LineID{DowntownLine}},
	{Code: "DT30", Name: "Bedok Reservoir", Coord: geo.Coordinate{Lat: 1.336800, Lng: 103.932900}, Lines: []LineID{DowntownLine}},
	{Code: "DT31", Name: "Tampines West", Coord: geo.Coordinate{Lat: 1.345600, Lng: 103.938400}, Lines: []LineID{DowntownLine}},
	{Code: "DT33", Name: "Tampines East", Coord: geo.Coordinate{Lat: 1.356300, Lng: 103.954600}, Lines: []LineID{DowntownLine}},
	{Code: "DT34", Name: "Upper Changi", Coord: geo.Coordinate{Lat: 1.341900, Lng: 103.961400}, Lines: []LineID{DowntownLine}},
	{Code: "DT35", Name: "Expo", Coord: geo.Coordinate{Lat: 1.335400, Lng: 103.961400}, Lines: []LineID{DowntownLine}},

	// Thomson-East Coast Line (TE1 -> TE22)
	{Code: "TE1", Name: "Woodlands North", Coord: geo.Coordinate{Lat: 1.448100, Lng: 103.785700}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE3", Name: "Woodlands South", Coord: geo.Coordinate{Lat: 1.427000, Lng: 103.793000}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE4", Name: "Springleaf", Coord: geo.Coordinate{Lat: 1.397800, Lng: 103.818000}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE5", Name: "Lentor", Coord: geo.Coordinate{Lat: 1.384600, Lng: 103.835700}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE6", Name: "Mayflower", Coord: geo.Coordinate{Lat: 1.372000, Lng: 103.836700}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE7", Name: "Bright Hill", Coord: geo.Coordinate{Lat: 1.362800, Lng: 103.833000}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE8", Name: "Upper Thomson", Coord: geo.Coordinate{Lat: 1.354400, Lng: 103.832900}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE12", Name: "Napier", Coord: geo.Coordinate{Lat: 1.306600, Lng: 103.819200}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE13", Name: "Orchard Boulevard", Coord: geo.Coordinate{Lat: 1.302400, Lng: 103.825400}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE15", Name: "Great World", Coord: geo.Coordinate{Lat: 1.293600, Lng: 103.831800}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE16", Name: "Havelock", Coord: geo.Coordinate{Lat: 1.287700, Lng: 103.833700}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE18", Name: "Maxwell", Coord: geo.Coordinate{Lat: 1.280600, Lng: 103.844000}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE19", Name: "Shenton Way", Coord: geo.Coordinate{Lat: 1.277000, Lng: 103.850000}, Lines: []LineID{ThomsonEastCoast}},
	{Code: "TE22", Name: "Gardens by the Bay", Coord: geo.Coordinate{Lat: 1.279400, Lng: 103.868600}, Lines: []LineID{ThomsonEastCoast}},

	// Bukit Panjang LRT (BP2 -> BP7; BP1 is Choa Chu Kang, BP6 is Bukit Panjang)
	{Code: "BP2", Name: "South View", Coord: geo.Coordinate{Lat: 1.380200, Lng: 103.745200}, Lines: []LineID{BukitPanjangLRT}},
	{Code: "BP3", Name: "Keat Hong", Coord: geo.Coordinate{Lat: 1.378500, Lng: 103.749000}, Lines: []LineID{BukitPanjangLRT}},
	{Code: "BP4", Name: "Teck Whye", Coord: geo.Coordinate{Lat: 1.376600, Lng: 103.753700}, Lines: []LineID{BukitPanjangLRT}},
	{Code: "BP5", Name: "Phoenix", Coord: geo.Coordinate{Lat: 1.378600, Lng: 103.758000}, Lines: []LineID{BukitPanjangLRT}},
	{Code: "BP7", Name: "Petir", Coord: geo.Coordinate{Lat: 1.377800, Lng: 103.766600}, Lines: []LineID{BukitPanjangLRT}},
}
