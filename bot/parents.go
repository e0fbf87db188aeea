package bot

import (
	"strconv"

	"spellbee/bot/token"
	"spellbee/models"

	"github.com/jinzhu/gorm"
	"github.com/mymmrac/telego"
)

// Free-form callback payloads owned by the handlers below. They share the
// token group-separator convention for carrying the parent id, but their
// payloads are opaque words, not field-encoded tokens.
const (
	payloadPickDateTime   = "pick_date_time"
	payloadQuickScheduler = "quick_scheduler"
	payloadRequested      = "requested"
	payloadParentCard     = "parent_id"
)

// parentByRef loads a parent by a decimal id reference. It returns
// (nil, nil) when the ref does not resolve, so callers can answer with a
// chat message instead of an error.
func parentByRef(db *gorm.DB, ref string) (*models.Parent, error) {
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || id <= 0 {
		return nil, nil
	}

	var parent models.Parent
	if err := db.First(&parent, id).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	return &parent, nil
}

func parentLabel(p *models.Parent) string {
	label := "#" + strconv.FormatInt(p.ID, 10)
	if p.Name != "" {
		label += " " + p.Name
	}
	return label
}

// parentActions is the standard button row attached to a parent in search
// results and cards.
func parentActions(parentID int64) []telego.InlineKeyboardButton {
	ref := strconv.FormatInt(parentID, 10)
	return []telego.InlineKeyboardButton{
		{Text: "📅 Schedule", CallbackData: token.Join(payloadPickDateTime, ref)},
		{Text: "⚡ Tomorrow", CallbackData: token.Join(payloadQuickScheduler, ref)},
		{Text: "Card", CallbackData: token.Join(payloadParentCard, ref)},
	}
}
