package domain

import "github.com/shopspring/decimal"

type Channel string

const (
	ChannelGoogle Channel = "google"
	ChannelMeta   Channel = "meta"
	ChannelTikTok Channel = "tiktok"
)

// Channels retorna os grupos de canal na ordem usada pelo gráfico de mix.
// Cada campo de investimento pertence a exatamente um grupo.
func Channels() []Channel {
	return []Channel{ChannelGoogle, ChannelMeta, ChannelTikTok}
}

func channelFields(r Record, channel Channel) []decimal.NullDecimal {
	switch channel {
	case ChannelGoogle:
		return []decimal.NullDecimal{
			r.GooglePaidSearchSpend,
			r.GoogleShoppingSpend,
			r.GooglePMaxSpend,
			r.GoogleDisplaySpend,
			r.GoogleVideoSpend,
		}
	case ChannelMeta:
		return []decimal.NullDecimal{
			r.MetaFacebookSpend,
			r.MetaInstagramSpend,
			r.MetaOtherSpend,
		}
	case ChannelTikTok:
		return []decimal.NullDecimal{r.TikTokSpend}
	}
	return nil
}
