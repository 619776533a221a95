package domain

import "github.com/shopspring/decimal"

// Nomes das colunas do CSV. São o contrato entre o loader e o pipeline.
const (
	ColumnDate                      = "DATE_DAY"
	ColumnVertical                  = "ORGANISATION_VERTICAL"
	ColumnTerritory                 = "TERRITORY_NAME"
	ColumnGooglePaidSearchSpend     = "GOOGLE_PAID_SEARCH_SPEND"
	ColumnGoogleShoppingSpend       = "GOOGLE_SHOPPING_SPEND"
	ColumnGooglePMaxSpend           = "GOOGLE_PMAX_SPEND"
	ColumnGoogleDisplaySpend        = "GOOGLE_DISPLAY_SPEND"
	ColumnGoogleVideoSpend          = "GOOGLE_VIDEO_SPEND"
	ColumnMetaFacebookSpend         = "META_FACEBOOK_SPEND"
	ColumnMetaInstagramSpend        = "META_INSTAGRAM_SPEND"
	ColumnMetaOtherSpend            = "META_OTHER_SPEND"
	ColumnTikTokSpend               = "TIKTOK_SPEND"
	ColumnAllPurchasesOriginalPrice = "ALL_PURCHASES_ORIGINAL_PRICE"
)

// Record representa uma linha do dataset MMM. Depois de carregado não é mais alterado.
// Campos numéricos ausentes ficam com Valid == false e contam como zero nas somas.
type Record struct {
	Date      string `json:"date"`
	Vertical  string `json:"vertical,omitempty"`
	Territory string `json:"territory,omitempty"`

	GooglePaidSearchSpend decimal.NullDecimal `json:"google_paid_search_spend"`
	GoogleShoppingSpend   decimal.NullDecimal `json:"google_shopping_spend"`
	GooglePMaxSpend       decimal.NullDecimal `json:"google_pmax_spend"`
	GoogleDisplaySpend    decimal.NullDecimal `json:"google_display_spend"`
	GoogleVideoSpend      decimal.NullDecimal `json:"google_video_spend"`
	MetaFacebookSpend     decimal.NullDecimal `json:"meta_facebook_spend"`
	MetaInstagramSpend    decimal.NullDecimal `json:"meta_instagram_spend"`
	MetaOtherSpend        decimal.NullDecimal `json:"meta_other_spend"`
	TikTokSpend           decimal.NullDecimal `json:"tiktok_spend"`

	// Receita bruta (antes do desconto)
	AllPurchasesOriginalPrice decimal.NullDecimal `json:"all_purchases_original_price"`
}

// Revenue retorna a receita bruta da linha, zero quando ausente.
func (r Record) Revenue() decimal.Decimal {
	return valueOrZero(r.AllPurchasesOriginalPrice)
}

// ChannelSpend soma os campos de investimento que pertencem ao canal informado.
func (r Record) ChannelSpend(channel Channel) decimal.Decimal {
	total := decimal.Zero
	for _, field := range channelFields(r, channel) {
		total = total.Add(valueOrZero(field))
	}
	return total
}

// NumericField devolve um ponteiro para o campo numérico associado à coluna.
// Usado pelos loaders para preencher o registro a partir do cabeçalho.
func (r *Record) NumericField(column string) (*decimal.NullDecimal, bool) {
	switch column {
	case ColumnGooglePaidSearchSpend:
		return &r.GooglePaidSearchSpend, true
	case ColumnGoogleShoppingSpend:
		return &r.GoogleShoppingSpend, true
	case ColumnGooglePMaxSpend:
		return &r.GooglePMaxSpend, true
	case ColumnGoogleDisplaySpend:
		return &r.GoogleDisplaySpend, true
	case ColumnGoogleVideoSpend:
		return &r.GoogleVideoSpend, true
	case ColumnMetaFacebookSpend:
		return &r.MetaFacebookSpend, true
	case ColumnMetaInstagramSpend:
		return &r.MetaInstagramSpend, true
	case ColumnMetaOtherSpend:
		return &r.MetaOtherSpend, true
	case ColumnTikTokSpend:
		return &r.TikTokSpend, true
	case ColumnAllPurchasesOriginalPrice:
		return &r.AllPurchasesOriginalPrice, true
	}
	return nil, false
}

// NumericColumns lista todas as colunas numéricas conhecidas, na ordem do dataset.
func NumericColumns() []string {
	return []string{
		ColumnGooglePaidSearchSpend,
		ColumnGoogleShoppingSpend,
		ColumnGooglePMaxSpend,
		ColumnGoogleDisplaySpend,
		ColumnGoogleVideoSpend,
		ColumnMetaFacebookSpend,
		ColumnMetaInstagramSpend,
		ColumnMetaOtherSpend,
		ColumnTikTokSpend,
		ColumnAllPurchasesOriginalPrice,
	}
}

func valueOrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}
