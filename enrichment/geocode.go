// Package enrichment derives presentation-only fields for the live
// disasters view: approximate coordinates for free-text locations and a
// severity label from the description. Nothing here is persisted.
package enrichment

import (
	"math/rand/v2"
	"strings"

	"disaster-alert-be/models"
)

// Bounding region used when a location cannot be matched. Roughly India.
const (
	MinLat = 8.0
	MaxLat = 37.0
	MinLng = 68.0
	MaxLng = 97.0
)

// cityCoords maps known place names (lower case) to [lat, lng]. This is a
// mock lookup, not a geocoder; unmapped locations get a random point
// inside the bounding region.
var cityCoords = map[string]models.Coordinates{
	"mumbai":             {Lat: 19.0760, Lng: 72.8777},
	"delhi":              {Lat: 28.7041, Lng: 77.1025},
	"bangalore":          {Lat: 12.9716, Lng: 77.5946},
	"kolkata":            {Lat: 22.5726, Lng: 88.3639},
	"chennai":            {Lat: 13.0827, Lng: 80.2707},
	"hyderabad":          {Lat: 17.3850, Lng: 78.4867},
	"pune":               {Lat: 18.5204, Lng: 73.8567},
	"ahmedabad":          {Lat: 23.0225, Lng: 72.5714},
	"jaipur":             {Lat: 26.9124, Lng: 75.7873},
	"lucknow":            {Lat: 26.8467, Lng: 80.9462},
	"kanpur":             {Lat: 26.4499, Lng: 80.3319},
	"nagpur":             {Lat: 21.1458, Lng: 79.0882},
	"indore":             {Lat: 22.7196, Lng: 75.8577},
	"thane":              {Lat: 19.2183, Lng: 72.9781},
	"bhopal":             {Lat: 23.2599, Lng: 77.4126},
	"visakhapatnam":      {Lat: 17.6868, Lng: 83.2185},
	"pimpri":             {Lat: 18.6298, Lng: 73.7997},
	"patna":              {Lat: 25.5941, Lng: 85.1376},
	"vadodara":           {Lat: 22.3072, Lng: 73.1812},
	"ghaziabad":          {Lat: 28.6692, Lng: 77.4538},
	"ludhiana":           {Lat: 30.9010, Lng: 75.8573},
	"agra":               {Lat: 27.1767, Lng: 78.0081},
	"nashik":             {Lat: 19.9975, Lng: 73.7898},
	"faridabad":          {Lat: 28.4089, Lng: 77.3178},
	"meerut":             {Lat: 28.9845, Lng: 77.7064},
	"rajkot":             {Lat: 22.3039, Lng: 70.8022},
	"kalyan":             {Lat: 19.2437, Lng: 73.1355},
	"vasai":              {Lat: 19.4912, Lng: 72.8054},
	"varanasi":           {Lat: 25.3176, Lng: 82.9739},
	"srinagar":           {Lat: 34.0837, Lng: 74.7973},
	"aurangabad":         {Lat: 19.8762, Lng: 75.3433},
	"dhanbad":            {Lat: 23.7957, Lng: 86.4304},
	"amritsar":           {Lat: 31.6340, Lng: 74.8723},
	"navi mumbai":        {Lat: 19.0330, Lng: 73.0297},
	"allahabad":          {Lat: 25.4358, Lng: 81.8463},
	"ranchi":             {Lat: 23.3441, Lng: 85.3096},
	"howrah":             {Lat: 22.5958, Lng: 88.2636},
	"coimbatore":         {Lat: 11.0168, Lng: 76.9558},
	"jabalpur":           {Lat: 23.1815, Lng: 79.9864},
	"gwalior":            {Lat: 26.2183, Lng: 78.1828},
	"vijayawada":         {Lat: 16.5062, Lng: 80.6480},
	"jodhpur":            {Lat: 26.2389, Lng: 73.0243},
	"madurai":            {Lat: 9.9252, Lng: 78.1198},
	"raipur":             {Lat: 21.2514, Lng: 81.6296},
	"kota":               {Lat: 25.2138, Lng: 75.8648},
	"chandigarh":         {Lat: 30.7333, Lng: 76.7794},
	"guwahati":           {Lat: 26.1445, Lng: 91.7362},
	"solapur":            {Lat: 17.6599, Lng: 75.9064},
	"hubli":              {Lat: 15.3647, Lng: 75.1240},
	"tiruchirappalli":    {Lat: 10.7905, Lng: 78.7047},
	"bareilly":           {Lat: 28.3670, Lng: 79.4304},
	"mysore":             {Lat: 12.2958, Lng: 76.6394},
	"tiruppur":           {Lat: 11.1085, Lng: 77.3411},
	"gurgaon":            {Lat: 28.4595, Lng: 77.0266},
	"aligarh":            {Lat: 27.8974, Lng: 78.0880},
	"jalandhar":          {Lat: 31.3260, Lng: 75.5762},
	"bhubaneswar":        {Lat: 20.2961, Lng: 85.8245},
	"salem":              {Lat: 11.6643, Lng: 78.1460},
	"warangal":           {Lat: 17.9689, Lng: 79.5941},
	"mira":               {Lat: 19.2952, Lng: 72.8679},
	"bhiwandi":           {Lat: 19.2812, Lng: 73.0482},
	"thiruvananthapuram": {Lat: 8.5241, Lng: 76.9366},
	"bhilai":             {Lat: 21.2167, Lng: 81.3833},
	"cuttack":            {Lat: 20.4625, Lng: 85.8828},
	"firozabad":          {Lat: 27.1592, Lng: 78.3957},
	"kochi":              {Lat: 9.9312, Lng: 76.2673},
	"bhavnagar":          {Lat: 21.7645, Lng: 72.1519},
	"dehradun":           {Lat: 30.3165, Lng: 78.0322},
	"durgapur":           {Lat: 23.5204, Lng: 87.3119},
	"asansol":            {Lat: 23.6739, Lng: 86.9524},
	"nanded":             {Lat: 19.1383, Lng: 77.2975},
	"kolhapur":           {Lat: 16.7050, Lng: 74.2433},
	"ajmer":              {Lat: 26.4499, Lng: 74.6399},
	"gulbarga":           {Lat: 17.3297, Lng: 76.8343},
	"jamnagar":           {Lat: 22.4707, Lng: 70.0577},
	"ujjain":             {Lat: 23.1765, Lng: 75.7885},
	"loni":               {Lat: 28.7333, Lng: 77.2833},
	"siliguri":           {Lat: 26.7271, Lng: 88.3953},
	"jhansi":             {Lat: 25.4484, Lng: 78.5685},
	"ulhasnagar":         {Lat: 19.2183, Lng: 73.1581},
	"nellore":            {Lat: 14.4426, Lng: 79.9865},
	"jammu":              {Lat: 32.7266, Lng: 74.8570},
	"sangli":             {Lat: 16.8524, Lng: 74.5815},
	"belgaum":            {Lat: 15.8497, Lng: 74.4977},
	"mangalore":          {Lat: 12.9141, Lng: 74.8560},
	"ambattur":           {Lat: 13.1143, Lng: 80.1548},
	"tirunelveli":        {Lat: 8.7139, Lng: 77.7567},
	"malegaon":           {Lat: 20.5579, Lng: 74.5287},
	"gaya":               {Lat: 24.7914, Lng: 85.0002},
}

// ResolveCoordinates maps a free-text location to coordinates: exact table
// match first, then substring containment in both directions, then a
// random point inside the bounding region.
func ResolveCoordinates(location string) models.Coordinates {
	key := strings.ToLower(strings.TrimSpace(location))

	if coords, ok := cityCoords[key]; ok {
		return coords
	}

	if key != "" {
		for city, coords := range cityCoords {
			if strings.Contains(key, city) || strings.Contains(city, key) {
				return coords
			}
		}
	}

	return models.Coordinates{
		Lat: MinLat + rand.Float64()*(MaxLat-MinLat),
		Lng: MinLng + rand.Float64()*(MaxLng-MinLng),
	}
}
