package sample

type station struct {
	name string
	lat  float64
	lng  float64
}

// stations maps CRS codes onto display names and coordinates for every
// calling point the route table can reference.
var stations = map[string]station{
	// London terminals
	"PAD": {"London Paddington", 51.5154, -0.1755},
	"KGX": {"London King's Cross", 51.5320, -0.1240},
	"EUS": {"London Euston", 51.5282, -0.1337},
	"WAT": {"London Waterloo", 51.5032, -0.1134},
	"VIC": {"London Victoria", 51.4952, -0.1441},
	"LST": {"London Liverpool St", 51.5178, -0.0825},
	"STP": {"London St Pancras", 51.5322, -0.1259},
	"LBG": {"London Bridge", 51.5052, -0.0864},
	"CHX": {"London Charing Cross", 51.5082, -0.1244},
	"MOG": {"London Moorgate", 51.5186, -0.0886},
	"FST": {"London Fenchurch St", 51.5114, -0.0795},

	// Major cities
	"BHM": {"Birmingham New St", 52.4778, -1.9000},
	"MAN": {"Manchester Piccadilly", 53.4774, -2.2309},
	"LDS": {"Leeds", 53.7954, -1.5484},
	"LIV": {"Liverpool Lime St", 53.4076, -2.9774},
	"SHF": {"Sheffield", 53.3783, -1.4622},
	"BRI": {"Bristol Temple Meads", 51.4499, -2.5813},
	"NCL": {"Newcastle", 54.9688, -1.6170},
	"EDB": {"Edinburgh Waverley", 55.9522, -3.1891},
	"GLC": {"Glasgow Central", 55.8590, -4.2578},
	"CDF": {"Cardiff Central", 51.4750, -3.1787},
	"NRW": {"Norwich", 52.6270, 1.3073},

	// Intermediate stations
	"RDG": {"Reading", 51.4589, -0.9717},
	"OXF": {"Oxford", 51.7533, -1.2698},
	"SWI": {"Swindon", 51.5654, -1.7854},
	"BTH": {"Bath Spa", 51.3776, -2.3571},
	"EXD": {"Exeter St Davids", 50.7236, -3.5275},
	"PLY": {"Plymouth", 50.3717, -4.1427},
	"PNZ": {"Penzance", 50.1223, -5.5321},
	"CBG": {"Cambridge", 52.1943, 0.1372},
	"PBO": {"Peterborough", 52.5749, -0.2503},
	"DON": {"Doncaster", 53.5225, -1.1391},
	"YRK": {"York", 53.9577, -1.0929},
	"DLM": {"Darlington", 54.5204, -1.5477},
	"MKC": {"Milton Keynes Central", 52.0344, -0.7747},
	"COV": {"Coventry", 52.4000, -1.5136},
	"WVH": {"Wolverhampton", 52.5862, -2.1180},
	"CRE": {"Crewe", 53.0887, -2.4316},
	"PRE": {"Preston", 53.7561, -2.7082},
	"LAN": {"Lancaster", 54.0489, -2.8075},
	"CAR": {"Carlisle", 54.8906, -2.9328},
	"NOT": {"Nottingham", 52.9470, -1.1468},
	"LEI": {"Leicester", 52.6313, -1.1253},
	"DBY": {"Derby", 52.9167, -1.4625},
	"STK": {"Stoke-on-Trent", 52.9998, -2.1842},
	"IPW": {"Ipswich", 52.0548, 1.1557},
	"CHM": {"Chelmsford", 51.7363, 0.4692},
	"CLJ": {"Clapham Junction", 51.4640, -0.1703},
	"SOU": {"Southampton Central", 50.9073, -1.4133},
	"BMH": {"Bournemouth", 50.7275, -1.8645},
	"WEY": {"Weymouth", 50.6144, -2.4548},
	"BTN": {"Brighton", 50.8296, -0.1410},
	"GTW": {"Gatwick Airport", 51.1564, -0.1611},
	"HAS": {"Hastings", 50.8586, 0.5873},
	"DVP": {"Dover Priory", 51.1241, 1.3048},
	"ASI": {"Ashford International", 51.1434, 0.8765},
	"CTB": {"Canterbury East", 51.2757, 1.0762},
	"SVS": {"Severn Tunnel Jn", 51.5860, -2.7728},
	"NWP": {"Newport", 51.5893, -2.9987},
	"SVG": {"Swansea", 51.6256, -3.9415},
	"ABD": {"Aberdeen", 57.1437, -2.0985},
	"INV": {"Inverness", 57.4809, -4.2234},
	"STG": {"Stirling", 56.1202, -3.9368},
	"PKS": {"Perth", 56.3927, -3.4381},
	"DDE": {"Dundee", 56.4565, -2.9716},
	"HFD": {"Hereford", 52.0612, -2.7086},
	"SHR": {"Shrewsbury", 52.7121, -2.7485},
	"AHD": {"Abergavenny", 51.8224, -3.0136},
	"WRX": {"Wrexham General", 53.0458, -2.9952},
	"HUL": {"Hull", 53.7438, -0.3483},
	"SCR": {"Scarborough", 54.2812, -0.4029},
	"HRG": {"Harrogate", 53.9933, -1.5373},
	"SKI": {"Skipton", 53.9587, -2.0236},
	"WGN": {"Wigan North Western", 53.5396, -2.6320},
	"WBQ": {"Warrington Bank Quay", 53.3880, -2.6026},
	"CHE": {"Chester", 53.1964, -2.8787},
	"BNG": {"Bangor", 53.2225, -4.1334},
	"HOL": {"Holyhead", 53.3069, -4.6319},
	"GRY": {"Grimsby Town", 53.5657, -0.0916},
	"LCN": {"Lincoln", 53.2263, -0.5387},
	"CTR": {"Chester-le-Street", 54.8588, -1.5742},

	// London commuter belt
	"WOK": {"Woking", 51.3189, -0.5573},
	"GFD": {"Guildford", 51.2372, -0.5957},
	"BSK": {"Basingstoke", 51.2677, -1.0863},
	"STA": {"Stafford", 52.8042, -2.1200},
	"TWI": {"Twickenham", 51.4501, -0.3306},
	"RMF": {"Romford", 51.5752, 0.1832},
	"SVK": {"Seven Kings", 51.5641, 0.0975},
	"ILF": {"Ilford", 51.5595, 0.0702},
	"STF": {"Stratford", 51.5416, -0.0036},
	"LER": {"Lewisham", 51.4660, -0.0138},
	"WMW": {"West Ham", 51.5285, 0.0053},
}
