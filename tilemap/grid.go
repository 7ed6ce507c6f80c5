package tilemap

// cell はタイルグリッド上の位置（列, 行）です。
type cell struct {
	Col, Row int
}

// 北東を右上、沖縄を左下に置いた簡略配置
var grid = map[string]cell{
	"hokkaido": {13, 0},

	"aomori":    {12, 2},
	"akita":     {11, 3},
	"iwate":     {12, 3},
	"yamagata":  {11, 4},
	"miyagi":    {12, 4},
	"niigata":   {10, 5},
	"fukushima": {11, 5},

	"ishikawa": {7, 6},
	"toyama":   {8, 6},
	"nagano":   {9, 6},
	"gunma":    {10, 6},
	"tochigi":  {11, 6},
	"ibaraki":  {12, 6},

	"shimane":   {3, 7},
	"tottori":   {4, 7},
	"fukui":     {7, 7},
	"gifu":      {8, 7},
	"yamanashi": {9, 7},
	"saitama":   {10, 7},
	"tokyo":     {11, 7},
	"chiba":     {12, 7},

	"yamaguchi": {2, 8},
	"hiroshima": {3, 8},
	"okayama":   {4, 8},
	"hyogo":     {5, 8},
	"kyoto":     {6, 8},
	"shiga":     {7, 8},
	"aichi":     {8, 8},
	"shizuoka":  {9, 8},
	"kanagawa":  {10, 8},

	"saga":    {0, 9},
	"fukuoka": {1, 9},
	"ehime":   {3, 9},
	"kagawa":  {4, 9},
	"osaka":   {6, 9},
	"nara":    {7, 9},
	"mie":     {8, 9},

	"nagasaki":  {0, 10},
	"kumamoto":  {1, 10},
	"oita":      {2, 10},
	"kochi":     {3, 10},
	"tokushima": {4, 10},
	"wakayama":  {6, 10},

	"kagoshima": {1, 11},
	"miyazaki":  {2, 11},

	"okinawa": {0, 12},
}

const (
	gridCols = 14
	gridRows = 13
)
