// Package adapters はgoalsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"journal_backend/internal/feature/goals/domain/entity"
	"journal_backend/internal/feature/goals/usecase"
)

// profilePostgres はProfileRepositoryインターフェースのGORM実装です。
type profilePostgres struct {
	db *gorm.DB
}

// profilePostgresがProfileRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfileRepository は指定されたgorm.DB接続でprofilePostgresの新しいインスタンスを生成します。
func NewProfileRepository(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

// FindOrCreate は指定ユーザーのプロフィールを取得し、存在しない場合は
// デフォルト値で作成して返します。
func (r *profilePostgres) FindOrCreate(ctx context.Context, userID uint) (*entity.Profile, error) {
	var p entity.Profile
	err := r.db.WithContext(ctx).
		Where(entity.Profile{UserID: userID}).
		Attrs(entity.Profile{
			PortSize:          entity.DefaultPortSize,
			ProfitGoalPercent: entity.DefaultProfitGoalPercent,
		}).
		FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save は設定フィールドを保存します。ゼロ値（QuestActive=false）も
// 反映されるようマップで更新します。
func (r *profilePostgres) Save(ctx context.Context, p *entity.Profile) error {
	return r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("user_id = ?", p.UserID).
		Updates(map[string]interface{}{
			"port_size":           p.PortSize,
			"profit_goal_percent": p.ProfitGoalPercent,
			"quest_active":        p.QuestActive,
		}).Error
}
