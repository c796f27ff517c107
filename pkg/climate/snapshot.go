package climate

// Snapshot is the dashboard weather card. Values are synthetic.
type Snapshot struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Location    string `json:"location"`
}

func Synthetic(location string) Snapshot {
	return Snapshot{Temperature: 24, Condition: "Partly Cloudy", Humidity: 65, WindSpeed: 12, Location: location}
}
