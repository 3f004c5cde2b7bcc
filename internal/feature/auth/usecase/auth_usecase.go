package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie_backend/internal/feature/user/domain/entity"
	userusecase "movie_backend/internal/feature/user/usecase"
)

// UserCreator はユーザー登録を行うコンポーネントを抽象化します。
// パスワードのハッシュ化は実装側（userユースケース）が担当します。
type UserCreator interface {
	Create(ctx context.Context, email, password string) (*entity.User, error)
}

// UserFinder はメールアドレスによるユーザー検索を抽象化します。
// ユーザーが存在しない場合、userusecase.ErrUserNotFoundを返します。
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// PasswordVerifier はハッシュと平文パスワードの照合を行います。
// 空のハッシュが渡された場合もダミー比較を実行し、falseを返します。
type PasswordVerifier interface {
	Compare(hash, plain string) bool
}

// TokenGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenGenerator interface {
	GenerateToken(userID uint) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	creator  UserCreator
	users    UserFinder
	verifier PasswordVerifier
	tokens   TokenGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(creator UserCreator, users UserFinder, verifier PasswordVerifier, tokens TokenGenerator) *authUsecase {
	return &authUsecase{
		creator:  creator,
		users:    users,
		verifier: verifier,
		tokens:   tokens,
	}
}

// Register は新規ユーザーを登録します。
// メールアドレスが既に使われている場合、ErrEmailAlreadyExistsを返します。
func (u *authUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.creator.Create(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, userusecase.ErrUserNotFound) {
		return "", fmt.Errorf("find user: %w", err)
	}

	// ユーザー未検出時は空ハッシュでダミー比較
	hash := ""
	if user != nil {
		hash = user.Password
	}
	if !u.verifier.Compare(hash, password) || user == nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
