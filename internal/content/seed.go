// File: internal/content/seed.go
package content

import "github.com/huaxia-history/go-huaxia/internal/api"

func ptr[T any](v T) *T { return &v }

// seedDynasties is the built-in dynasty catalog, in chronological order.
var seedDynasties = []api.DynastyVO{
	{ID: 1, Name: "夏朝", StartYear: -2070, EndYear: -1600, Capital: "阳城（今河南登封）",
		Description: "中国历史上第一个世袭制朝代，标志着中国从原始社会进入奴隶社会。"},
	{ID: 2, Name: "商朝", StartYear: -1600, EndYear: -1046, Capital: "殷（今河南安阳）",
		Description: "甲骨文和青铜器文明的鼎盛时期，是中国有文字记载的最早朝代。"},
	{ID: 3, Name: "周朝", StartYear: -1046, EndYear: -256, Capital: "镐京、洛邑",
		Description: "中国历史上最长的朝代，分为西周和东周，确立了封建宗法制度。"},
	{ID: 4, Name: "秦朝", StartYear: -221, EndYear: -207, Capital: "咸阳（今陕西咸阳）",
		Description: "中国历史上第一个统一的中央集权制国家，统一文字、货币、度量衡。"},
	{ID: 5, Name: "汉朝", StartYear: -202, EndYear: 220, Capital: "长安、洛阳",
		Description: "中国历史上最强盛的朝代之一，开辟丝绸之路，确立儒家正统地位。"},
	{ID: 6, Name: "唐朝", StartYear: 618, EndYear: 907, Capital: "长安（今陕西西安）",
		Description: "中国历史上最开放繁荣的朝代，诗歌文化达到顶峰，万国来朝。"},
	{ID: 7, Name: "宋朝", StartYear: 960, EndYear: 1279, Capital: "开封、临安",
		Description: "经济与科技高度发达的朝代，四大发明中三项在此时期成熟。"},
	{ID: 8, Name: "元朝", StartYear: 1271, EndYear: 1368, Capital: "大都（今北京）",
		Description: "由蒙古族建立的大一统王朝，疆域空前辽阔，东西方交流频繁。"},
	{ID: 9, Name: "明朝", StartYear: 1368, EndYear: 1644, Capital: "南京、北京",
		Description: "汉族建立的最后一个大一统王朝，郑和七下西洋，修建紫禁城。"},
	{ID: 10, Name: "清朝", StartYear: 1636, EndYear: 1912, Capital: "北京",
		Description: "中国最后一个封建王朝，康乾盛世疆域辽阔，晚期闭关锁国走向衰落。"},
}

// seedPersons is the built-in catalog of historical figures.
var seedPersons = []api.PersonVO{
	{ID: 1, Name: "秦始皇", Surname: ptr("嬴"), GivenName: ptr("政"),
		DynastyID: 4, DynastyName: ptr("秦朝"), BirthYear: ptr(-259), DeathYear: ptr(-210),
		Summary:      "中国历史上第一位皇帝，统一六国，建立中央集权制度。",
		Achievements: []string{"统一六国", "统一文字货币度量衡", "修建长城"}},
	{ID: 2, Name: "汉武帝", Surname: ptr("刘"), GivenName: ptr("彻"), PosthumousName: ptr("孝武皇帝"), TempleName: ptr("世宗"),
		DynastyID: 5, DynastyName: ptr("汉朝"), BirthYear: ptr(-156), DeathYear: ptr(-87),
		Summary:      "西汉最杰出的皇帝之一，开疆拓土，独尊儒术。",
		Achievements: []string{"独尊儒术", "开辟丝绸之路", "设立太学", "击败匈奴"}},
	{ID: 3, Name: "唐太宗", Surname: ptr("李"), GivenName: ptr("世民"), TempleName: ptr("太宗"),
		DynastyID: 6, DynastyName: ptr("唐朝"), BirthYear: ptr(598), DeathYear: ptr(649),
		Summary:      "开创贞观之治，被各族尊为天可汗。",
		Achievements: []string{"贞观之治", "虚心纳谏", "完善科举制度"}},
	{ID: 4, Name: "孔子", Surname: ptr("孔"), GivenName: ptr("丘"), CourtesyName: ptr("仲尼"),
		DynastyID: 3, DynastyName: ptr("周朝"), BirthYear: ptr(-551), DeathYear: ptr(-479),
		Summary:      "儒家学派创始人，被尊为至圣先师，影响中国两千余年。",
		Achievements: []string{"创立儒家学说", "有教无类", "整理六经"}},
	{ID: 5, Name: "诸葛亮", Surname: ptr("诸葛"), GivenName: ptr("亮"), CourtesyName: ptr("孔明"), ArtName: ptr("卧龙"),
		DynastyID: 5, DynastyName: ptr("汉朝"), BirthYear: ptr(181), DeathYear: ptr(234),
		Summary:      "三国时期蜀汉丞相，杰出的政治家、军事家，鞠躬尽瘁。",
		Achievements: []string{"隆中对", "治理蜀汉", "发明木牛流马"}},
	{ID: 6, Name: "李白", Surname: ptr("李"), GivenName: ptr("白"), CourtesyName: ptr("太白"), ArtName: ptr("青莲居士"),
		DynastyID: 6, DynastyName: ptr("唐朝"), BirthYear: ptr(701), DeathYear: ptr(762),
		Summary:      "盛唐浪漫主义诗人，被后人誉为诗仙。",
		Achievements: []string{"《将进酒》", "《蜀道难》", "存诗近千首"}},
	{ID: 7, Name: "岳飞", Surname: ptr("岳"), GivenName: ptr("飞"), CourtesyName: ptr("鹏举"), PosthumousName: ptr("武穆"),
		DynastyID: 7, DynastyName: ptr("宋朝"), BirthYear: ptr(1103), DeathYear: ptr(1142),
		Summary:      "南宋抗金名将，精忠报国的民族英雄。",
		Achievements: []string{"组建岳家军", "郾城大捷", "《满江红》"}},
	{ID: 8, Name: "司马迁", Surname: ptr("司马"), GivenName: ptr("迁"), CourtesyName: ptr("子长"),
		DynastyID: 5, DynastyName: ptr("汉朝"), BirthYear: ptr(-145), DeathYear: ptr(-86),
		Summary:      "西汉史学家，著《史记》，开创纪传体通史体例。",
		Achievements: []string{"著《史记》", "开创纪传体", "究天人之际"}},
}

// seedEvents is the built-in catalog of historical events.
var seedEvents = []api.EventVO{
	{ID: 1, Title: "大禹治水", StartYear: ptr(-2100), DynastyID: ptr(uint(1)), Category: ptr("political"),
		Summary: ptr("大禹采用疏导之法治理洪水，奠定了夏朝建立的基础。")},
	{ID: 2, Title: "武王伐纣", StartYear: ptr(-1046), DynastyID: ptr(uint(3)), Category: ptr("military"),
		Summary: ptr("周武王率诸侯联军在牧野之战中击败商军，商朝灭亡。")},
	{ID: 3, Title: "统一六国", StartYear: ptr(-230), EndYear: ptr(-221), DynastyID: ptr(uint(4)), Category: ptr("military"),
		Summary: ptr("秦王嬴政先后灭韩赵魏楚燕齐，建立中国第一个大一统王朝。")},
	{ID: 4, Title: "开辟丝绸之路", StartYear: ptr(-138), DynastyID: ptr(uint(5)), Category: ptr("cultural"),
		Summary: ptr("张骞两次出使西域，打通了连接东西方文明的商贸通道。")},
	{ID: 5, Title: "贞观之治", StartYear: ptr(627), EndYear: ptr(649), DynastyID: ptr(uint(6)), Category: ptr("political"),
		Summary: ptr("唐太宗励精图治，政治清明、经济复苏，开启盛唐气象。")},
	{ID: 6, Title: "活字印刷术发明", StartYear: ptr(1041), DynastyID: ptr(uint(7)), Category: ptr("scientific"),
		Summary: ptr("毕昇发明胶泥活字印刷，大幅降低书籍制作成本。")},
	{ID: 7, Title: "郑和下西洋", StartYear: ptr(1405), EndYear: ptr(1433), DynastyID: ptr(uint(9)), Category: ptr("cultural"),
		Summary: ptr("郑和率船队七次远航，最远到达非洲东海岸。")},
	{ID: 8, Title: "康乾盛世", StartYear: ptr(1661), EndYear: ptr(1796), DynastyID: ptr(uint(10)), Category: ptr("political"),
		Summary: ptr("康熙、雍正、乾隆三朝国力强盛，人口与疆域达到高峰。")},
}

// seedRelics is the built-in catalog of historical sites and relics.
var seedRelics = []api.RelicVO{
	{ID: 1, Name: "长城", Location: "北京等十五个省区市", DynastyID: ptr(uint(4)), DynastyName: ptr("秦朝"),
		Description: "世界上修建时间最长、工程量最大的古代防御工程。"},
	{ID: 2, Name: "兵马俑", Location: "陕西省西安市临潼区", DynastyID: ptr(uint(4)), DynastyName: ptr("秦朝"),
		Description: "秦始皇陵的陪葬坑，被誉为世界第八大奇迹。"},
	{ID: 3, Name: "莫高窟", Location: "甘肃省敦煌市", DynastyID: ptr(uint(6)), DynastyName: ptr("唐朝"),
		Description: "历经千年营造的佛教艺术宝库，壁画与彩塑闻名于世。"},
	{ID: 4, Name: "大雁塔", Location: "陕西省西安市", DynastyID: ptr(uint(6)), DynastyName: ptr("唐朝"),
		Description: "玄奘为保存取经带回的经卷佛像主持修建的砖塔。"},
	{ID: 5, Name: "清明上河图", Location: "北京故宫博物院藏", DynastyID: ptr(uint(7)), DynastyName: ptr("宋朝"),
		Description: "张择端绘制的风俗画长卷，描绘北宋都城汴京的繁华。"},
	{ID: 6, Name: "紫禁城", Location: "北京市", DynastyID: ptr(uint(9)), DynastyName: ptr("明朝"),
		Description: "明清两代的皇家宫殿，世界上现存规模最大的木结构古建筑群。"},
}

// seedPlaceNames maps ancient place names to modern locations.
var seedPlaceNames = []api.PlaceNameVO{
	{ID: 1, AncientName: "长安", ModernName: "西安", ModernLocation: "陕西省西安市",
		Description: "汉唐等十三朝古都，丝绸之路的东方起点。"},
	{ID: 2, AncientName: "汴京", ModernName: "开封", ModernLocation: "河南省开封市",
		Description: "北宋都城，清明上河图描绘的繁华之地。"},
	{ID: 3, AncientName: "临安", ModernName: "杭州", ModernLocation: "浙江省杭州市",
		Description: "南宋都城，上有天堂下有苏杭。"},
	{ID: 4, AncientName: "金陵", ModernName: "南京", ModernLocation: "江苏省南京市",
		Description: "六朝古都，明朝初年的都城。"},
	{ID: 5, AncientName: "燕京", ModernName: "北京", ModernLocation: "北京市",
		Description: "元明清三代都城，今中国首都。"},
	{ID: 6, AncientName: "姑苏", ModernName: "苏州", ModernLocation: "江苏省苏州市",
		Description: "春秋吴国都城，园林之城。"},
	{ID: 7, AncientName: "广陵", ModernName: "扬州", ModernLocation: "江苏省扬州市",
		Description: "隋唐运河重镇，烟花三月下扬州。"},
	{ID: 8, AncientName: "洛邑", ModernName: "洛阳", ModernLocation: "河南省洛阳市",
		Description: "周朝东都，汉魏隋唐多朝建都于此。"},
}
