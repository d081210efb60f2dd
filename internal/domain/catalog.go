package domain

func single(emojis []string, phrases []string) group {
	return group{{emojis: emojis, phrases: phrases}}
}

// catalog lists the semantic groups challenges are sampled from. Pools with
// several emojis cover skin-tone and style variants of the same concept.
var catalog = []group{
	single([]string{"😎", "🕶"}, []string{"people in sunglasses", "sunglasses"}),
	single([]string{"🥳", "🎉", "🎊"}, []string{"birthday party children", "people on a party"}),
	single([]string{"😤", "😠", "😡"}, []string{"angry man", "angry woman"}),
	single([]string{"🤗", "👐", "👐🏻", "👐🏼"}, []string{"hug", "hugging"}),
	single([]string{"🤫"}, []string{"shushing man", "shushing woman"}),
	single([]string{"🤔"}, []string{"thinking man"}),
	single([]string{"😴", "💤", "🛌"}, []string{"sleep"}),
	single([]string{"🤢", "🤮"}, []string{"vomit in cartoon"}),
	single([]string{"🤧", "😷", "🤒", "🤕"}, []string{"sick man"}),
	single([]string{"🤑", "💰", "💸", "💵"}, []string{"money economics", "dollars", "euros"}),
	single([]string{"💥", "💣"}, []string{"bomb explodes cartoonish"}),
	single([]string{"👌", "👌🏻", "👌🏼", "🆗"}, []string{"ok hand"}),
	single([]string{"✌️", "✌🏻", "✌🏼"}, []string{"showing victory hand"}),
	single([]string{"🤞", "🤞🏻", "🤞🏼"}, []string{"showing crossed fingers"}),
	single([]string{"🤘", "🤘🏻", "🤘🏼"}, []string{"people showing rock hand"}),
	single([]string{"✊", "✊🏻", "✊🏼"}, []string{"raised fist"}),
	single([]string{"👏", "👏🏻", "👏🏼"}, []string{"people clapping hands"}),
	single([]string{"🙌", "🙌🏻", "🙌🏼"}, []string{"people raising hands up"}),
	single([]string{"🧠"}, []string{"brain pictures"}),
	single([]string{"🦷"}, []string{"tooth"}),
	single([]string{"🦴"}, []string{"bone"}),
	single([]string{"👀", "👁️"}, []string{"eyes"}),
	single([]string{"😛", "👅"}, []string{"tongue"}),
	single([]string{"🍌"}, []string{"banana", "eat banana"}),
	{
		{emojis: []string{"🐶", "🐕️", "🦮", "🐩"}, phrases: []string{"dog"}},
		{emojis: []string{"🐺"}, phrases: []string{"wolf"}},
	},
	single([]string{"🦊"}, []string{"fox"}),
	{
		{emojis: []string{"🙉", "🐵", "🐒"}, phrases: []string{"monkey"}},
		{emojis: []string{"🦍", "🦧"}, phrases: []string{"gorilla"}},
	},
	single([]string{"🐮", "🐄"}, []string{"cow"}),
	single([]string{"🐷", "🐖"}, []string{"pig"}),
	{
		{emojis: []string{"🦁"}, phrases: []string{"lion"}},
		{emojis: []string{"🐯"}, phrases: []string{"tiger"}},
	},
	single([]string{"🐪", "🐫"}, []string{"camel"}),
	single([]string{"🦒"}, []string{"giraffe"}),
	single([]string{"🐘"}, []string{"elephant"}),
	single([]string{"🐰", "🐇"}, []string{"rabbit"}),
	single([]string{"🦔"}, []string{"hedgehog"}),
	single([]string{"🐻"}, []string{"bear"}),
	single([]string{"🐼"}, []string{"panda"}),
	single([]string{"🦘"}, []string{"kangaroo"}),
	single([]string{"🐔", "🐓"}, []string{"chicken", "rooster"}),
	single([]string{"🐣", "🐤", "🐥"}, []string{"baby chick"}),
	single([]string{"🐧"}, []string{"penguin"}),
	single([]string{"🦆"}, []string{"duck with green head"}),
	single([]string{"🦢"}, []string{"swan"}),
	single([]string{"🦉"}, []string{"owl"}),
	single([]string{"🦩"}, []string{"flamingo"}),
	single([]string{"🦜"}, []string{"parrot"}),
	single([]string{"🐸"}, []string{"frog"}),
	single([]string{"🐊"}, []string{"crocodile"}),
	single([]string{"🐢"}, []string{"turtle"}),
	{
		{emojis: []string{"🐍"}, phrases: []string{"snake"}},
		{emojis: []string{"🪱"}, phrases: []string{"worm"}},
	},
	{
		{emojis: []string{"🐳", "🐋"}, phrases: []string{"whale", "spouting whale"}},
		{emojis: []string{"🐬"}, phrases: []string{"dolphin"}},
		{emojis: []string{"🐟️"}, phrases: []string{"fish"}},
		{emojis: []string{"🐠"}, phrases: []string{"tropical fish"}},
		{emojis: []string{"🦈"}, phrases: []string{"shark"}},
	},
	single([]string{"🐙"}, []string{"red octopus"}),
	single([]string{"🐌"}, []string{"snail"}),
	single([]string{"🦋"}, []string{"butterfly"}),
	single([]string{"🐝"}, []string{"honeybee"}),
	single([]string{"🦂"}, []string{"scorpion"}),
	{
		{emojis: []string{"🌸"}, phrases: []string{"cherry blossom"}},
		{emojis: []string{"🌹"}, phrases: []string{"rose"}},
		{emojis: []string{"🌺"}, phrases: []string{"hibiscus"}},
		{emojis: []string{"🌻"}, phrases: []string{"sunflower"}},
		{emojis: []string{"🌷"}, phrases: []string{"tulip"}},
	},
	single([]string{"🌱"}, []string{"seedling"}),
	{
		{emojis: []string{"🐭", "🐁"}, phrases: []string{"mouse"}},
		{emojis: []string{"🐀"}, phrases: []string{"rat"}},
		{emojis: []string{"🐹"}, phrases: []string{"hamster"}},
	},
	{
		{emojis: []string{"🤠"}, phrases: []string{"cowboy"}},
		{emojis: []string{"🐴", "🐎"}, phrases: []string{"horse"}},
	},
	single([]string{"😈", "👹"}, []string{"devil"}),
	single([]string{"🤡"}, []string{"clown"}),
	single([]string{"👻"}, []string{"ghost"}),
	single([]string{"💀", "☠️"}, []string{"skull"}),
	single([]string{"👽"}, []string{"alien", "ufo"}),
	single([]string{"🤖"}, []string{"robot"}),
	single([]string{"🎃"}, []string{"halloween", "pumpkin"}),
	single([]string{"😺", "🐈"}, []string{"cat", "kitty"}),
	single([]string{"👍", "👍🏻", "👍🏼"}, []string{"people thumbs up"}),
	single([]string{"👎", "👎🏻", "👎🏼"}, []string{"people thumbs down sad"}),
	single([]string{"👂", "👂🏻", "👂🏼"}, []string{"ear"}),
	single([]string{"👃", "👃🏻", "👃🏼"}, []string{"pictures of nose"}),
	single([]string{"👶", "👶🏻", "👶🏼"}, []string{"child", "baby"}),
	single([]string{"🎅", "🎅🏻", "🎅🏼"}, []string{"santa clause"}),
	{
		{emojis: []string{"🦖"}, phrases: []string{"dinosaur T-Rex"}},
		{emojis: []string{"🦕"}, phrases: []string{"dinosaur sauropod"}},
	},
}

// CatalogSize reports how many semantic groups are available, which is the
// upper bound for a challenge size.
func CatalogSize() int {
	return len(catalog)
}
