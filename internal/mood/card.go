package mood

import (
	"errors"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	cardWidth      = 600
	cardStripe     = 120
	cardPadding    = 40
	cardBarHeight  = 24
	cardBarSpacing = 16
)

var (
	cardBackground = color.NRGBA{R: 250, G: 248, B: 245, A: 255}
	cardTrack      = color.NRGBA{R: 228, G: 224, B: 220, A: 255}
	cardBar        = color.NRGBA{R: 120, G: 110, B: 140, A: 255}
)

// ErrEmptyResult is returned when a card is requested for a result without colours.
var ErrEmptyResult = errors.New("result has no colours to render")

// RenderCard draws a share card for res: one stripe per dominant colour and a
// bar per mood score in display order, then encodes it as PNG.
func RenderCard(w io.Writer, res *Result) error {
	img, err := CardImage(res)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}

// CardImage builds the share card image without encoding it.
func CardImage(res *Result) (*image.NRGBA, error) {
	if res == nil || len(res.DominantColors) == 0 {
		return nil, ErrEmptyResult
	}

	stripes := make([]color.Color, 0, len(res.DominantColors))
	for _, h := range res.DominantColors {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		stripes = append(stripes, c.Clamped())
	}
	if len(stripes) == 0 {
		return nil, ErrEmptyResult
	}

	barColor := color.Color(cardBar)
	if res.AccentColor != "" {
		if c, err := colorful.Hex(res.AccentColor); err == nil {
			barColor = c.Clamped()
		}
	}

	height := cardStripe + cardPadding*2 + len(Moods)*(cardBarHeight+cardBarSpacing)
	card := imaging.New(cardWidth, height, cardBackground)

	stripeWidth := cardWidth / len(stripes)
	for i, c := range stripes {
		width := stripeWidth
		if i == len(stripes)-1 {
			width = cardWidth - stripeWidth*i
		}
		card = imaging.Paste(card, imaging.New(width, cardStripe, c), image.Pt(i*stripeWidth, 0))
	}

	trackWidth := cardWidth - cardPadding*2
	y := cardStripe + cardPadding
	for _, m := range Moods {
		card = imaging.Paste(card, imaging.New(trackWidth, cardBarHeight, cardTrack), image.Pt(cardPadding, y))

		score := min(max(res.Scores[m], 0), 100)
		if filled := trackWidth * score / 100; filled > 0 {
			fill := barColor
			if m == res.PrimaryMood {
				fill = stripes[0]
			}
			card = imaging.Paste(card, imaging.New(filled, cardBarHeight, fill), image.Pt(cardPadding, y))
		}
		y += cardBarHeight + cardBarSpacing
	}

	return card, nil
}
