package manning

import (
	"errors"
	"fmt"

	"github.com/ukaji3/manning-go/pkg/manning/models"
)

// StatusMessage turns the outcome of a load into the line shown to the user.
func StatusMessage(res *models.LoadResult, err error) string {
	var (
		openErr  *FileOpenError
		readErr  *SheetReadError
		notFound *DateNotFoundError
	)
	switch {
	case err == nil && res != nil:
		return fmt.Sprintf("✅ エクセルを読み込みました (%s)", res.Position)
	case errors.As(err, &notFound):
		return fmt.Sprintf("❌ 本日(%d月%d日)の日付列が見つかりません", notFound.Month, notFound.Day)
	case errors.Is(err, ErrNoSheet):
		return "❌ シートが見つかりません"
	case errors.As(err, &readErr):
		return "❌ シートの読み込みに失敗しました"
	case errors.As(err, &openErr):
		return fmt.Sprintf("❌ ファイルを開けません: %v", openErr.Err)
	case err != nil:
		return fmt.Sprintf("❌ %v", err)
	default:
		return ""
	}
}
