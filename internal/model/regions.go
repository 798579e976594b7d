package model

// Region is one administrative region with its fixed map coordinates.
type Region struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Regions is the fixed enumeration of the 34 administrative regions used for
// the province dimension and the shipping endpoints. Order is significant:
// zero-filled province tables are returned in this order.
var Regions = []Region{
	{"Beijing", 116.46, 39.92},
	{"Tianjin", 117.2, 39.13},
	{"Hebei", 114.52, 38.04},
	{"Shanxi", 112.53, 37.87},
	{"Inner Mongolia", 111.65, 40.82},
	{"Liaoning", 123.43, 41.8},
	{"Jilin", 125.32, 43.88},
	{"Heilongjiang", 126.53, 45.77},
	{"Shanghai", 121.48, 31.22},
	{"Jiangsu", 118.76, 32.05},
	{"Zhejiang", 120.15, 30.26},
	{"Anhui", 117.27, 31.86},
	{"Fujian", 119.3, 26.08},
	{"Jiangxi", 115.89, 28.68},
	{"Shandong", 117.12, 36.65},
	{"Henan", 113.65, 34.76},
	{"Hubei", 114.31, 30.52},
	{"Hunan", 112.93, 28.22},
	{"Guangdong", 113.26, 23.13},
	{"Guangxi", 108.33, 22.84},
	{"Hainan", 110.35, 20.02},
	{"Chongqing", 106.54, 29.59},
	{"Sichuan", 104.06, 30.67},
	{"Guizhou", 106.71, 26.57},
	{"Yunnan", 102.73, 25.04},
	{"Tibet", 91.11, 29.67},
	{"Shaanxi", 108.95, 34.27},
	{"Gansu", 103.73, 36.03},
	{"Qinghai", 101.78, 36.62},
	{"Ningxia", 106.27, 38.47},
	{"Xinjiang", 87.68, 43.77},
	{"Macau", 113.54, 22.2},
	{"Hong Kong", 114.1, 22.2},
	{"Taiwan", 121.0, 23.7},
}

var regionIndex = func() map[string]Region {
	m := make(map[string]Region, len(Regions))
	for _, r := range Regions {
		m[r.Name] = r
	}
	return m
}()

// RegionByName returns the region entry for name.
func RegionByName(name string) (Region, bool) {
	r, ok := regionIndex[name]
	return r, ok
}
