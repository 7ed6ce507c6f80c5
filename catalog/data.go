package catalog

import "github.com/stsysd/tabimap/model"

// prefectureTable は47都道府県と地区の静的な定義です。
var prefectureTable = []prefectureEntry{
	{
		ID:      "hokkaido",
		Name:    "Hokkaido",
		NameJp:  "北海道",
		Region:  model.RegionHokkaido,
		GeoName: "Hokkai Do",
		Districts: []districtEntry{
			{"Sapporo", "札幌"},
			{"Hakodate", "函館"},
			{"Asahikawa", "旭川"},
			{"Kushiro", "釧路"},
			{"Obihiro", "帯広"},
			{"Kitami", "北見"},
			{"Otaru", "小樽"},
			{"Muroran", "室蘭"},
			{"Tomakomai", "苫小牧"},
			{"Ebetsu", "江別"},
			{"Chitose", "千歳"},
			{"Eniwa", "恵庭"},
			{"Iwamizawa", "岩見沢"},
			{"Kitahiroshima", "北広島"},
		},
	},
	{
		ID:      "aomori",
		Name:    "Aomori",
		NameJp:  "青森県",
		Region:  model.RegionTohoku,
		GeoName: "Aomori Ken",
		Districts: []districtEntry{
			{"Aomori", "青森"},
			{"Hirosaki", "弘前"},
			{"Hachinohe", "八戸"},
			{"Towada", "十和田"},
			{"Mutsu", "むつ"},
			{"Goshogawara", "五所川原"},
			{"Kuroishi", "黒石"},
			{"Tsugaru", "つがる"},
			{"Hirakawa", "平川"},
		},
	},
	{
		ID:      "iwate",
		Name:    "Iwate",
		NameJp:  "岩手県",
		Region:  model.RegionTohoku,
		GeoName: "Iwate Ken",
		Districts: []districtEntry{
			{"Morioka", "盛岡"},
			{"Ichinoseki", "一関"},
			{"Oshu", "奥州"},
			{"Hanamaki", "花巻"},
			{"Kitakami", "北上"},
			{"Kamaishi", "釜石"},
			{"Miyako", "宮古"},
			{"Hachimantai", "八幡平"},
			{"Takizawa", "滝沢"},
			{"Ninohe", "二戸"},
		},
	},
	{
		ID:      "miyagi",
		Name:    "Miyagi",
		NameJp:  "宮城県",
		Region:  model.RegionTohoku,
		GeoName: "Miyagi Ken",
		Districts: []districtEntry{
			{"Sendai", "仙台"},
			{"Ishinomaki", "石巻"},
			{"Kesennuma", "気仙沼"},
			{"Shiogama", "塩竈"},
			{"Natori", "名取"},
			{"Kakuda", "角田"},
			{"Tagajo", "多賀城"},
			{"Tome", "登米"},
			{"Kurihara", "栗原"},
			{"Osaki", "大崎"},
		},
	},
	{
		ID:      "akita",
		Name:    "Akita",
		NameJp:  "秋田県",
		Region:  model.RegionTohoku,
		GeoName: "Akita Ken",
		Districts: []districtEntry{
			{"Akita", "秋田"},
			{"Odate", "大館"},
			{"Yokote", "横手"},
			{"Kazuno", "鹿角"},
			{"Yuzawa", "湯沢"},
			{"Daisen", "大仙"},
			{"Noshiro", "能代"},
			{"Kitaakita", "北秋田"},
			{"Semboku", "仙北"},
		},
	},
	{
		ID:      "yamagata",
		Name:    "Yamagata",
		NameJp:  "山形県",
		Region:  model.RegionTohoku,
		GeoName: "Yamagata Ken",
		Districts: []districtEntry{
			{"Yamagata", "山形"},
			{"Tsuruoka", "鶴岡"},
			{"Sakata", "酒田"},
			{"Yonezawa", "米沢"},
			{"Shinjo", "新庄"},
			{"Obanazawa", "尾花沢"},
			{"Sagae", "寒河江"},
			{"Tendo", "天童"},
			{"Nagai", "長井"},
			{"Kaminoyama", "上山"},
		},
	},
	{
		ID:      "fukushima",
		Name:    "Fukushima",
		NameJp:  "福島県",
		Region:  model.RegionTohoku,
		GeoName: "Fukushima Ken",
		Districts: []districtEntry{
			{"Fukushima", "福島"},
			{"Koriyama", "郡山"},
			{"Iwaki", "いわき"},
			{"Aizuwakamatsu", "会津若松"},
			{"Shirakawa", "白河"},
			{"Soma", "相馬"},
			{"Sukagawa", "須賀川"},
			{"Date", "伊達"},
			{"Motomiya", "本宮"},
			{"Tamura", "田村"},
		},
	},
	{
		ID:      "ibaraki",
		Name:    "Ibaraki",
		NameJp:  "茨城県",
		Region:  model.RegionKanto,
		GeoName: "Ibaraki Ken",
		Districts: []districtEntry{
			{"Mito", "水戸"},
			{"Tsukuba", "つくば"},
			{"Hitachi", "日立"},
			{"Kashima", "鹿嶋"},
			{"Tsuchiura", "土浦"},
			{"Koga", "古河"},
			{"Tsukubamirai", "つくばみらい"},
			{"Chikusei", "筑西"},
			{"Shimotsuma", "下妻"},
			{"Ushiku", "牛久"},
		},
	},
	{
		ID:      "tochigi",
		Name:    "Tochigi",
		NameJp:  "栃木県",
		Region:  model.RegionKanto,
		GeoName: "Tochigi Ken",
		Districts: []districtEntry{
			{"Utsunomiya", "宇都宮"},
			{"Ashikaga", "足利"},
			{"Nikko", "日光"},
			{"Kanuma", "鹿沼"},
			{"Otawara", "大田原"},
			{"Oyama", "小山"},
			{"Tochigi", "栃木"},
			{"Yaita", "矢板"},
			{"Nasushiobara", "那須塩原"},
			{"Moka", "真岡"},
		},
	},
	{
		ID:      "gunma",
		Name:    "Gunma",
		NameJp:  "群馬県",
		Region:  model.RegionKanto,
		GeoName: "Gunma Ken",
		Districts: []districtEntry{
			{"Maebashi", "前橋"},
			{"Takasaki", "高崎"},
			{"Kiryu", "桐生"},
			{"Numata", "沼田"},
			{"Tomioka", "富岡"},
			{"Isesaki", "伊勢崎"},
			{"Ota", "太田"},
			{"Annaka", "安中"},
			{"Shibukawa", "渋川"},
			{"Fujioka", "藤岡"},
		},
	},
	{
		ID:      "saitama",
		Name:    "Saitama",
		NameJp:  "埼玉県",
		Region:  model.RegionKanto,
		GeoName: "Saitama Ken",
		Districts: []districtEntry{
			{"Saitama", "さいたま"},
			{"Kawagoe", "川越"},
			{"Kumagaya", "熊谷"},
			{"Tokorozawa", "所沢"},
			{"Chichibu", "秩父"},
			{"Kasukabe", "春日部"},
			{"Kawaguchi", "川口"},
			{"Koshigaya", "越谷"},
			{"Soka", "草加"},
			{"Kuki", "久喜"},
		},
	},
	{
		ID:      "chiba",
		Name:    "Chiba",
		NameJp:  "千葉県",
		Region:  model.RegionKanto,
		GeoName: "Chiba Ken",
		Districts: []districtEntry{
			{"Chiba", "千葉"},
			{"Funabashi", "船橋"},
			{"Kisarazu", "木更津"},
			{"Narita", "成田"},
			{"Kashiwa", "柏"},
			{"Matsudo", "松戸"},
			{"Noda", "野田"},
			{"Ichikawa", "市川"},
			{"Urayasu", "浦安"},
			{"Narashino", "習志野"},
		},
	},
	{
		ID:      "tokyo",
		Name:    "Tokyo",
		NameJp:  "東京都",
		Region:  model.RegionKanto,
		GeoName: "Tokyo To",
		Districts: []districtEntry{
			{"Chiyoda", "千代田区"},
			{"Chuo", "中央区"},
			{"Minato", "港区"},
			{"Shinjuku", "新宿区"},
			{"Bunkyo", "文京区"},
			{"Taito", "台東区"},
			{"Sumida", "墨田区"},
			{"Koto", "江東区"},
			{"Shinagawa", "品川区"},
			{"Meguro", "目黒区"},
			{"Ota", "大田区"},
			{"Setagaya", "世田谷区"},
			{"Shibuya", "渋谷区"},
			{"Nakano", "中野区"},
			{"Suginami", "杉並区"},
			{"Toshima", "豊島区"},
			{"Kita", "北区"},
			{"Arakawa", "荒川区"},
			{"Itabashi", "板橋区"},
			{"Nerima", "練馬区"},
			{"Adachi", "足立区"},
			{"Katsushika", "葛飾区"},
			{"Edogawa", "江戸川区"},
		},
	},
	{
		ID:      "kanagawa",
		Name:    "Kanagawa",
		NameJp:  "神奈川県",
		Region:  model.RegionKanto,
		GeoName: "Kanagawa Ken",
		Districts: []districtEntry{
			{"Yokohama", "横浜"},
			{"Kawasaki", "川崎"},
			{"Sagamihara", "相模原"},
			{"Kamakura", "鎌倉"},
			{"Odawara", "小田原"},
			{"Yokosuka", "横須賀"},
			{"Fujisawa", "藤沢"},
			{"Hiratsuka", "平塚"},
			{"Atsugi", "厚木"},
			{"Chigasaki", "茅ヶ崎"},
		},
	},
	{
		ID:      "niigata",
		Name:    "Niigata",
		NameJp:  "新潟県",
		Region:  model.RegionChubu,
		GeoName: "Niigata Ken",
		Districts: []districtEntry{
			{"Niigata", "新潟"},
			{"Nagaoka", "長岡"},
			{"Joetsu", "上越"},
			{"Shibata", "新発田"},
			{"Murakami", "村上"},
			{"Kashiwazaki", "柏崎"},
			{"Sanjo", "三条"},
			{"Tsubame", "燕"},
			{"Minamiuonuma", "南魚沼"},
			{"Tokamachi", "十日町"},
		},
	},
	{
		ID:      "toyama",
		Name:    "Toyama",
		NameJp:  "富山県",
		Region:  model.RegionChubu,
		GeoName: "Toyama Ken",
		Districts: []districtEntry{
			{"Toyama", "富山"},
			{"Takaoka", "高岡"},
			{"Uozu", "魚津"},
			{"Kurobe", "黒部"},
			{"Himi", "氷見"},
			{"Namerikawa", "滑川"},
			{"Tonami", "砺波"},
			{"Nanto", "南砺"},
			{"Kamiichi", "上市"},
			{"Tateyama", "立山"},
		},
	},
	{
		ID:      "ishikawa",
		Name:    "Ishikawa",
		NameJp:  "石川県",
		Region:  model.RegionChubu,
		GeoName: "Ishikawa Ken",
		Districts: []districtEntry{
			{"Kanazawa", "金沢"},
			{"Wajima", "輪島"},
			{"Nanao", "七尾"},
			{"Komatsu", "小松"},
			{"Kaga", "加賀"},
			{"Noto", "能登"},
			{"Hakusan", "白山"},
			{"Kahoku", "かほく"},
			{"Nomi", "能美"},
			{"Hakui", "羽咋"},
		},
	},
	{
		ID:      "fukui",
		Name:    "Fukui",
		NameJp:  "福井県",
		Region:  model.RegionChubu,
		GeoName: "Fukui Ken",
		Districts: []districtEntry{
			{"Fukui", "福井"},
			{"Tsuruga", "敦賀"},
			{"Obama", "小浜"},
			{"Ono", "大野"},
			{"Katsuyama", "勝山"},
			{"Sabae", "鯖江"},
			{"Echizen", "越前"},
			{"Awara", "あわら"},
			{"Sakai", "坂井"},
			{"Yoshida", "吉田"},
		},
	},
	{
		ID:      "yamanashi",
		Name:    "Yamanashi",
		NameJp:  "山梨県",
		Region:  model.RegionChubu,
		GeoName: "Yamanashi Ken",
		Districts: []districtEntry{
			{"Kofu", "甲府"},
			{"Fujiyoshida", "富士吉田"},
			{"Kawaguchiko", "河口湖"},
			{"Tsuru", "都留"},
			{"Minami-Alps", "南アルプス"},
			{"Fuefuki", "笛吹"},
			{"Yamanashi", "山梨"},
			{"Otsuki", "大月"},
			{"Nirasaki", "韮崎"},
			{"Chuo", "中央市"},
		},
	},
	{
		ID:      "nagano",
		Name:    "Nagano",
		NameJp:  "長野県",
		Region:  model.RegionChubu,
		GeoName: "Nagano Ken",
		Districts: []districtEntry{
			{"Nagano", "長野"},
			{"Matsumoto", "松本"},
			{"Karuizawa", "軽井沢"},
			{"Suwa", "諏訪"},
			{"Ueda", "上田"},
			{"Shiojiri", "塩尻"},
			{"Iiyama", "飯山"},
			{"Komoro", "小諸"},
			{"Okaya", "岡谷"},
			{"Ina", "伊那"},
		},
	},
	{
		ID:      "gifu",
		Name:    "Gifu",
		NameJp:  "岐阜県",
		Region:  model.RegionChubu,
		GeoName: "Gifu Ken",
		Districts: []districtEntry{
			{"Gifu", "岐阜"},
			{"Takayama", "高山"},
			{"Gero", "下呂"},
			{"Ogaki", "大垣"},
			{"Gujo", "郡上"},
			{"Hida", "飛騨"},
			{"Kani", "可児"},
			{"Hashima", "羽島"},
			{"Kaizu", "海津"},
			{"Seki", "関"},
		},
	},
	{
		ID:      "shizuoka",
		Name:    "Shizuoka",
		NameJp:  "静岡県",
		Region:  model.RegionChubu,
		GeoName: "Shizuoka Ken",
		Districts: []districtEntry{
			{"Shizuoka", "静岡"},
			{"Hamamatsu", "浜松"},
			{"Fuji", "富士"},
			{"Numazu", "沼津"},
			{"Ito", "伊東"},
			{"Shimada", "島田"},
			{"Mishima", "三島"},
			{"Iwata", "磐田"},
			{"Yaizu", "焼津"},
			{"Fujieda", "藤枝"},
		},
	},
	{
		ID:      "aichi",
		Name:    "Aichi",
		NameJp:  "愛知県",
		Region:  model.RegionChubu,
		GeoName: "Aichi Ken",
		Districts: []districtEntry{
			{"Nagoya", "名古屋"},
			{"Toyota", "豊田"},
			{"Okazaki", "岡崎"},
			{"Ichinomiya", "一宮"},
			{"Gamagori", "蒲郡"},
			{"Inuyama", "犬山"},
			{"Kasugai", "春日井"},
			{"Toyohashi", "豊橋"},
			{"Anjo", "安城"},
			{"Komaki", "小牧"},
		},
	},
	{
		ID:      "mie",
		Name:    "Mie",
		NameJp:  "三重県",
		Region:  model.RegionKinki,
		GeoName: "Mie Ken",
		Districts: []districtEntry{
			{"Tsu", "津"},
			{"Yokkaichi", "四日市"},
			{"Ise", "伊勢"},
			{"Shima", "志摩"},
			{"Matsusaka", "松阪"},
			{"Kuwana", "桑名"},
			{"Suzuka", "鈴鹿"},
			{"Nabari", "名張"},
			{"Iga", "伊賀"},
			{"Kumano", "熊野"},
		},
	},
	{
		ID:      "shiga",
		Name:    "Shiga",
		NameJp:  "滋賀県",
		Region:  model.RegionKinki,
		GeoName: "Shiga Ken",
		Districts: []districtEntry{
			{"Otsu", "大津"},
			{"Hikone", "彦根"},
			{"Kusatsu", "草津"},
			{"Nagahama", "長浜"},
			{"Koka", "甲賀"},
			{"Omihachiman", "近江八幡"},
			{"Yasu", "野洲"},
			{"Moriyama", "守山"},
			{"Ritto", "栗東"},
			{"Konan", "湖南"},
		},
	},
	{
		ID:      "kyoto",
		Name:    "Kyoto",
		NameJp:  "京都府",
		Region:  model.RegionKinki,
		GeoName: "Kyoto Fu",
		Districts: []districtEntry{
			{"Kita", "北区"},
			{"Kamigyo", "上京区"},
			{"Sakyo", "左京区"},
			{"Nakagyo", "中京区"},
			{"Higashiyama", "東山区"},
			{"Shimogyo", "下京区"},
			{"Minami", "南区"},
			{"Ukyo", "右京区"},
			{"Fushimi", "伏見区"},
			{"Yamashina", "山科区"},
			{"Nishikyo", "西京区"},
			{"Muko", "向日市"},
			{"Uji", "宇治市"},
			{"Kameoka", "亀岡市"},
			{"Kyotanabe", "京田辺市"},
			{"Otokuni", "乙訓郡"},
			{"Kuse", "久世郡"},
		},
	},
	{
		ID:      "osaka",
		Name:    "Osaka",
		NameJp:  "大阪府",
		Region:  model.RegionKinki,
		GeoName: "Osaka Fu",
		Districts: []districtEntry{
			{"Kita", "北区"},
			{"Miyakojima", "都島区"},
			{"Fukushima", "福島区"},
			{"Konohana", "此花区"},
			{"Chuo", "中央区"},
			{"Nishi", "西区"},
			{"Minato", "港区"},
			{"Taisho", "大正区"},
			{"Tennoji", "天王寺区"},
			{"Naniwa", "浪速区"},
			{"Nishinari", "西成区"},
			{"Yodogawa", "淀川区"},
			{"Tsurumi", "鶴見区"},
			{"Suminoe", "住之江区"},
			{"Sumiyoshi", "住吉区"},
			{"Higashisumiyoshi", "東住吉区"},
			{"Ikuno", "生野区"},
			{"Asahi", "旭区"},
			{"Joto", "城東区"},
			{"Abeno", "阿倍野区"},
			{"Higashinari", "東成区"},
			{"Higashiyodogawa", "東淀川区"},
			{"Higashisumiyoshi", "東住吉区"},
			{"Hirano", "平野区"},
		},
	},
	{
		ID:      "hyogo",
		Name:    "Hyogo",
		NameJp:  "兵庫県",
		Region:  model.RegionKinki,
		GeoName: "Hyogo Ken",
		Districts: []districtEntry{
			{"Kobe", "神戸"},
			{"Himeji", "姫路"},
			{"Nishinomiya", "西宮"},
			{"Amagasaki", "尼崎"},
			{"Toyooka", "豊岡"},
			{"Kinosaki", "城崎"},
			{"Ako", "赤穂"},
			{"Awaji Island", "淡路島"},
			{"Sumoto", "洲本"},
			{"Takarazuka", "宝塚"},
		},
	},
	{
		ID:      "nara",
		Name:    "Nara",
		NameJp:  "奈良県",
		Region:  model.RegionKinki,
		GeoName: "Nara Ken",
		Districts: []districtEntry{
			{"Nara", "奈良"},
			{"Yamatokoriyama", "大和郡山"},
			{"Kashihara", "橿原"},
			{"Ikoma", "生駒"},
			{"Yoshino", "吉野"},
			{"Tenri", "天理"},
			{"Sakurai", "桜井"},
			{"Gojo", "五條"},
			{"Kashiba", "香芝"},
			{"Uda", "宇陀"},
		},
	},
	{
		ID:      "wakayama",
		Name:    "Wakayama",
		NameJp:  "和歌山県",
		Region:  model.RegionKinki,
		GeoName: "Wakayama Ken",
		Districts: []districtEntry{
			{"Wakayama", "和歌山"},
			{"Kainan", "海南"},
			{"Tanabe", "田辺"},
			{"Shingu", "新宮"},
			{"Koya", "高野山"},
			{"Shirahama", "白浜"},
			{"Iwade", "岩出"},
			{"Gobou", "御坊"},
			{"Arida", "有田"},
			{"Hashimoto", "橋本"},
		},
	},
	{
		ID:      "tottori",
		Name:    "Tottori",
		NameJp:  "鳥取県",
		Region:  model.RegionChugoku,
		GeoName: "Tottori Ken",
		Districts: []districtEntry{
			{"Tottori", "鳥取"},
			{"Yonago", "米子"},
			{"Kurayoshi", "倉吉"},
			{"Sakaiminato", "境港"},
			{"Yurihama", "湯梨浜"},
			{"Daisen", "大山"},
			{"Iwami", "岩美"},
			{"Misasa", "三朝"},
			{"Hokuei", "北栄"},
			{"Kotoura", "琴浦"},
		},
	},
	{
		ID:      "shimane",
		Name:    "Shimane",
		NameJp:  "島根県",
		Region:  model.RegionChugoku,
		GeoName: "Shimane Ken",
		Districts: []districtEntry{
			{"Matsue", "松江"},
			{"Izumo", "出雲"},
			{"Hamada", "浜田"},
			{"Masuda", "益田"},
			{"Oda", "大田"},
			{"Gotsu", "江津"},
			{"Unnan", "雲南"},
			{"Iinan", "飯南"},
			{"Tsuwano", "津和野"},
			{"Okinoshima", "隠岐の島"},
		},
	},
	{
		ID:      "okayama",
		Name:    "Okayama",
		NameJp:  "岡山県",
		Region:  model.RegionChugoku,
		GeoName: "Okayama Ken",
		Districts: []districtEntry{
			{"Okayama", "岡山"},
			{"Kurashiki", "倉敷"},
			{"Tsuyama", "津山"},
			{"Takahashi", "高梁"},
			{"Bizen", "備前"},
			{"Soja", "総社"},
			{"Mimasaka", "美作"},
			{"Ibara", "井原"},
			{"Asakuchi", "浅口"},
			{"Maniwa", "真庭"},
		},
	},
	{
		ID:      "hiroshima",
		Name:    "Hiroshima",
		NameJp:  "広島県",
		Region:  model.RegionChugoku,
		GeoName: "Hiroshima Ken",
		Districts: []districtEntry{
			{"Hiroshima", "広島"},
			{"Fukuyama", "福山"},
			{"Kure", "呉"},
			{"Hatsukaichi", "廿日市"},
			{"Onomichi", "尾道"},
			{"Mihara", "三原"},
			{"Higashihiroshima", "東広島"},
			{"Akitakata", "安芸高田"},
			{"Takehara", "竹原"},
			{"Otake", "大竹"},
		},
	},
	{
		ID:      "yamaguchi",
		Name:    "Yamaguchi",
		NameJp:  "山口県",
		Region:  model.RegionChugoku,
		GeoName: "Yamaguchi Ken",
		Districts: []districtEntry{
			{"Yamaguchi", "山口"},
			{"Shimonoseki", "下関"},
			{"Ube", "宇部"},
			{"Hofu", "防府"},
			{"Iwakuni", "岩国"},
			{"Hagi", "萩"},
			{"Kudamatsu", "下松"},
			{"Shunan", "周南"},
			{"Yanai", "柳井"},
			{"Suo-Oshima", "周防大島"},
		},
	},
	{
		ID:      "tokushima",
		Name:    "Tokushima",
		NameJp:  "徳島県",
		Region:  model.RegionShikoku,
		GeoName: "Tokushima Ken",
		Districts: []districtEntry{
			{"Tokushima", "徳島"},
			{"Naruto", "鳴門"},
			{"Anan", "阿南"},
			{"Mima", "美馬"},
			{"Awa", "阿波"},
			{"Yoshinogawa", "吉野川"},
			{"Miyoshi", "三好"},
			{"Komatsushima", "小松島"},
			{"Katsuura", "勝浦"},
			{"Naka", "那賀"},
		},
	},
	{
		ID:      "kagawa",
		Name:    "Kagawa",
		NameJp:  "香川県",
		Region:  model.RegionShikoku,
		GeoName: "Kagawa Ken",
		Districts: []districtEntry{
			{"Takamatsu", "高松"},
			{"Marugame", "丸亀"},
			{"Sanuki", "さぬき"},
			{"Kotohira", "琴平"},
			{"Zentsuji", "善通寺"},
			{"Kanonji", "観音寺"},
			{"Sakaide", "坂出"},
			{"Miki", "三木"},
			{"Ayagawa", "綾川"},
			{"Tonosho", "土庄"},
		},
	},
	{
		ID:      "ehime",
		Name:    "Ehime",
		NameJp:  "愛媛県",
		Region:  model.RegionShikoku,
		GeoName: "Ehime Ken",
		Districts: []districtEntry{
			{"Matsuyama", "松山"},
			{"Imabari", "今治"},
			{"Uwajima", "宇和島"},
			{"Yawatahama", "八幡浜"},
			{"Dogo Onsen", "道後温泉"},
			{"Niihama", "新居浜"},
			{"Saijo", "西条"},
			{"Ozu", "大洲"},
			{"Seiyo", "西予"},
			{"Toon", "東温"},
		},
	},
	{
		ID:      "kochi",
		Name:    "Kochi",
		NameJp:  "高知県",
		Region:  model.RegionShikoku,
		GeoName: "Kochi Ken",
		Districts: []districtEntry{
			{"Kochi", "高知"},
			{"Nankoku", "南国"},
			{"Shimanto", "四万十"},
			{"Sukumo", "宿毛"},
			{"Muroto", "室戸"},
			{"Aki", "安芸"},
			{"Susaki", "須崎"},
			{"Tosashimizu", "土佐清水"},
			{"Konan", "香南"},
			{"Tosa", "土佐"},
		},
	},
	{
		ID:      "fukuoka",
		Name:    "Fukuoka",
		NameJp:  "福岡県",
		Region:  model.RegionKyushu,
		GeoName: "Fukuoka Ken",
		Districts: []districtEntry{
			{"Fukuoka", "福岡"},
			{"Kitakyushu", "北九州"},
			{"Kurume", "久留米"},
			{"Dazaifu", "太宰府"},
			{"Yanagawa", "柳川"},
			{"Iizuka", "飯塚"},
			{"Tagawa", "田川"},
			{"Yame", "八女"},
			{"Asakura", "朝倉"},
			{"Chikugo", "筑後"},
		},
	},
	{
		ID:      "saga",
		Name:    "Saga",
		NameJp:  "佐賀県",
		Region:  model.RegionKyushu,
		GeoName: "Saga Ken",
		Districts: []districtEntry{
			{"Saga", "佐賀"},
			{"Karatsu", "唐津"},
			{"Imari", "伊万里"},
			{"Takeo", "武雄"},
			{"Arita", "有田"},
			{"Kashima", "鹿島"},
			{"Ogi", "小城市"},
			{"Kanzaki", "神埼"},
			{"Yoshinogari", "吉野ヶ里"},
			{"Taku", "多久"},
		},
	},
	{
		ID:      "nagasaki",
		Name:    "Nagasaki",
		NameJp:  "長崎県",
		Region:  model.RegionKyushu,
		GeoName: "Nagasaki Ken",
		Districts: []districtEntry{
			{"Nagasaki", "長崎"},
			{"Sasebo", "佐世保"},
			{"Shimabara", "島原"},
			{"Hirado", "平戸"},
			{"Goto Islands", "五島列島"},
			{"Omura", "大村"},
			{"Isahaya", "諫早"},
			{"Iki", "壱岐"},
			{"Tsushima", "対馬"},
			{"Minamishimabara", "南島原"},
		},
	},
	{
		ID:      "kumamoto",
		Name:    "Kumamoto",
		NameJp:  "熊本県",
		Region:  model.RegionKyushu,
		GeoName: "Kumamoto Ken",
		Districts: []districtEntry{
			{"Kumamoto", "熊本"},
			{"Amakusa", "天草"},
			{"Aso", "阿蘇"},
			{"Kurokawa Onsen", "黒川温泉"},
			{"Hitoyoshi", "人吉"},
			{"Tamana", "玉名"},
			{"Yamaga", "山鹿"},
			{"Kikuchi", "菊池"},
			{"Yatsushiro", "八代"},
			{"Uto", "宇土"},
		},
	},
	{
		ID:      "oita",
		Name:    "Oita",
		NameJp:  "大分県",
		Region:  model.RegionKyushu,
		GeoName: "Oita Ken",
		Districts: []districtEntry{
			{"Oita", "大分"},
			{"Beppu", "別府"},
			{"Yufuin", "由布院"},
			{"Kunisaki", "国東"},
			{"Usa", "宇佐"},
			{"Hita", "日田"},
			{"Saiki", "佐伯"},
			{"Nakatsu", "中津"},
			{"Kitsuki", "杵築"},
			{"Usuki", "臼杵"},
		},
	},
	{
		ID:      "miyazaki",
		Name:    "Miyazaki",
		NameJp:  "宮崎県",
		Region:  model.RegionKyushu,
		GeoName: "Miyazaki Ken",
		Districts: []districtEntry{
			{"Miyazaki", "宮崎"},
			{"Nichinan", "日南"},
			{"Hyuga", "日向"},
			{"Takachiho", "高千穂"},
			{"Aoshima", "青島"},
			{"Nobeoka", "延岡"},
			{"Kobayashi", "小林"},
			{"Ebino", "えびの"},
			{"Kushima", "串間"},
			{"Saito", "西都"},
		},
	},
	{
		ID:      "kagoshima",
		Name:    "Kagoshima",
		NameJp:  "鹿児島県",
		Region:  model.RegionKyushu,
		GeoName: "Kagoshima Ken",
		Districts: []districtEntry{
			{"Kagoshima", "鹿児島"},
			{"Ibusuki", "指宿"},
			{"Kirishima", "霧島"},
			{"Sakurajima", "桜島"},
			{"Yakushima", "屋久島"},
			{"Amami Islands", "奄美群島"},
			{"Kanoya", "鹿屋"},
			{"Satsumasendai", "薩摩川内"},
			{"Izumi", "出水"},
			{"Akune", "阿久根"},
		},
	},
	{
		ID:      "okinawa",
		Name:    "Okinawa",
		NameJp:  "沖縄県",
		Region:  model.RegionKyushu,
		GeoName: "Okinawa Ken",
		Districts: []districtEntry{
			{"Naha", "那覇"},
			{"Nago", "名護"},
			{"Ishigaki", "石垣"},
			{"Miyakojima", "宮古島"},
			{"Kerama Islands", "慶良間諸島"},
			{"Okinawa", "沖縄市"},
			{"Uruma", "うるま"},
			{"Ginowan", "宜野湾"},
			{"Tomigusuku", "豊見城"},
			{"Itoman", "糸満"},
		},
	},
}
