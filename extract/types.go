package extract

// ProductDesign is the structured output of the extraction stage: product
// and brand data plus the design decisions the generation stage executes.
// Every field is optional; a missing field decodes to its zero value and is
// simply omitted downstream.
type ProductDesign struct {
	Product         Product         `json:"product"`
	Description     Description     `json:"description"`
	Images          Images          `json:"images"`
	Brand           Brand           `json:"brand"`
	Promotions      Promotions      `json:"promotions"`
	MatchingProduct MatchingProduct `json:"matching_products"`

	BrandAnalysis        BrandAnalysis        `json:"brand_analysis"`
	DesignDecisions      DesignDecisions      `json:"design_decisions"`
	CopywritingDirection CopywritingDirection `json:"copywriting_direction"`
}

type Product struct {
	Name          string `json:"name"`
	Variant       string `json:"variant,omitempty"`
	FullName      string `json:"full_name,omitempty"`
	Price         string `json:"price,omitempty"`
	OriginalPrice string `json:"original_price,omitempty"`
	Category      string `json:"category,omitempty"`
	Collection    string `json:"collection,omitempty"`
	URL           string `json:"url,omitempty"`
}

// DisplayName returns the fullest available product name.
func (p Product) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Name
}

type Feature struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Description struct {
	Headline         string    `json:"headline,omitempty"`
	Body             string    `json:"body,omitempty"`
	Features         []Feature `json:"features,omitempty"`
	FitNote          string    `json:"fit_note,omitempty"`
	CareInstructions string    `json:"care_instructions,omitempty"`
}

type Images struct {
	Hero       string   `json:"hero,omitempty"`
	Secondary  string   `json:"secondary,omitempty"`
	Additional []string `json:"additional,omitempty"`
}

// Count returns the number of usable images.
func (i Images) Count() int {
	count := len(i.Additional)
	if i.Hero != "" {
		count++
	}
	if i.Secondary != "" {
		count++
	}
	return count
}

type Brand struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	Tagline   string `json:"tagline,omitempty"`
	Origin    string `json:"origin,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
	Website   string `json:"website,omitempty"`
}

type Promotions struct {
	FreeShippingThreshold string `json:"free_shipping_threshold,omitempty"`
	CurrentSale           string `json:"current_sale,omitempty"`
	LoyaltyProgram        string `json:"loyalty_program,omitempty"`
}

type MatchingProduct struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type BrandAnalysis struct {
	MarketPosition       string   `json:"market_position,omitempty"`
	TargetDemographic    string   `json:"target_demographic,omitempty"`
	BrandPersonality     []string `json:"brand_personality,omitempty"`
	VisualIdentityNotes  string   `json:"visual_identity_notes,omitempty"`
	CompetitorComparison string   `json:"competitor_comparison,omitempty"`
}

type DesignDecisions struct {
	OverallAesthetic string       `json:"overall_aesthetic,omitempty"`
	ColorPalette     ColorPalette `json:"color_palette"`
	Typography       Typography   `json:"typography"`
	Layout           Layout       `json:"layout"`
	Buttons          Buttons      `json:"buttons"`
	Spacing          string       `json:"spacing,omitempty"`
	Mood             Mood         `json:"mood"`
}

type ColorPalette struct {
	PrimaryAccent   string `json:"primary_accent,omitempty"`
	SecondaryAccent string `json:"secondary_accent,omitempty"`
	BackgroundMain  string `json:"background_main,omitempty"`
	BackgroundAlt   string `json:"background_alt,omitempty"`
	TextPrimary     string `json:"text_primary,omitempty"`
	TextSecondary   string `json:"text_secondary,omitempty"`
	TextOnDark      string `json:"text_on_dark,omitempty"`
	ButtonBG        string `json:"button_bg,omitempty"`
	ButtonText      string `json:"button_text,omitempty"`
	BorderColor     string `json:"border_color,omitempty"`
}

type Typography struct {
	HeadlineFont          string     `json:"headline_font,omitempty"`
	HeadlineStyle         string     `json:"headline_style,omitempty"`
	HeadlineWeight        FlexString `json:"headline_weight,omitempty"`
	HeadlineCase          string     `json:"headline_case,omitempty"`
	HeadlineLetterSpacing string     `json:"headline_letter_spacing,omitempty"`
	BodyFont              string     `json:"body_font,omitempty"`
	BodyWeight            FlexString `json:"body_weight,omitempty"`
	BodyLineHeight        FlexString `json:"body_line_height,omitempty"`
	AccentFont            string     `json:"accent_font,omitempty"`
	AccentStyle           string     `json:"accent_style,omitempty"`
	AccentLetterSpacing   string     `json:"accent_letter_spacing,omitempty"`
}

type Layout struct {
	MaxWidth        FlexString `json:"max_width,omitempty"`
	PaddingOuter    string     `json:"padding_outer,omitempty"`
	PaddingSections string     `json:"padding_sections,omitempty"`
	Alignment       string     `json:"alignment,omitempty"`
	ImageStyle      string     `json:"image_style,omitempty"`
	SectionDividers string     `json:"section_dividers,omitempty"`
}

type Buttons struct {
	Style         string     `json:"style,omitempty"`
	Shape         string     `json:"shape,omitempty"`
	BorderRadius  FlexString `json:"border_radius,omitempty"`
	Padding       string     `json:"padding,omitempty"`
	TextCase      string     `json:"text_case,omitempty"`
	LetterSpacing string     `json:"letter_spacing,omitempty"`
}

type Mood struct {
	ToneWords []string `json:"tone_words,omitempty"`
	Avoid     []string `json:"avoid,omitempty"`
}

type CopywritingDirection struct {
	HeadlineApproach string `json:"headline_approach,omitempty"`
	VoiceTone        string `json:"voice_tone,omitempty"`
	VocabularyLevel  string `json:"vocabulary_level,omitempty"`
	CTAStyle         string `json:"cta_style,omitempty"`
	SampleHeadline   string `json:"sample_headline,omitempty"`
	SamplePreheader  string `json:"sample_preheader,omitempty"`
}
