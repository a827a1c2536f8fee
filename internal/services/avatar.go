package services

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/yungbote/lifebalance-backend/internal/logger"
	"github.com/yungbote/lifebalance-backend/internal/types"
)

const avatarSize = 256

// AvatarService renders the initial-letter avatar generated at
// registration. The PNG is stored on the user row; there is no object
// store in this deployment.
type AvatarService interface {
	AttachAvatar(ctx context.Context, user *types.User) error
}

type avatarService struct {
	log      *logger.Logger
	bgColors []color.NRGBA
	fontFace font.Face
}

var defaultAvatarColors = []color.NRGBA{
	{R: 0x34, G: 0xA8, B: 0x53, A: 0xFF}, // green
	{R: 0x42, G: 0x85, B: 0xF4, A: 0xFF}, // blue
	{R: 0xFB, G: 0xBC, B: 0x05, A: 0xFF}, // yellow
	{R: 0xEA, G: 0x43, B: 0x35, A: 0xFF}, // red
	{R: 0x67, G: 0x3A, B: 0xB7, A: 0xFF}, // purple
	{R: 0x00, G: 0x96, B: 0x88, A: 0xFF}, // teal
}

func NewAvatarService(log *logger.Logger) (AvatarService, error) {
	serviceLog := log.With("service", "AvatarService")

	fontPath := strings.TrimSpace(os.Getenv("AVATAR_FONT"))
	if fontPath == "" {
		return nil, fmt.Errorf("env var AVATAR_FONT is empty")
	}
	serviceLog.Info("Loading avatar font", "font", fontPath)

	face, err := loadFontFace(fontPath, avatarSize*0.45)
	if err != nil {
		return nil, fmt.Errorf("could not load avatar font: %w", err)
	}

	return &avatarService{
		log:      serviceLog,
		bgColors: defaultAvatarColors,
		fontFace: face,
	}, nil
}

func loadFontFace(path string, points float64) (font.Face, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := truetype.Parse(raw)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: points}), nil
}

func (as *avatarService) AttachAvatar(ctx context.Context, user *types.User) error {
	bg := as.pickColor(user.Email)
	initial := avatarInitial(user.Email)

	dc := gg.NewContext(avatarSize, avatarSize)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetFontFace(as.fontFace)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(initial, avatarSize/2, avatarSize/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("failed to encode avatar png: %w", err)
	}

	user.AvatarColor = nrgbaToHex(bg)
	user.AvatarPNG = buf.Bytes()
	return nil
}

// pickColor is deterministic per email so regenerated avatars keep their
// color.
func (as *avatarService) pickColor(email string) color.NRGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(email)))
	return as.bgColors[h.Sum32()%uint32(len(as.bgColors))]
}

func avatarInitial(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "?"
	}
	return strings.ToUpper(email[:1])
}

func nrgbaToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
