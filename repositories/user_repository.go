package repositories

import (
	"context"
	"time"

	"esencia-shop/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := models.DB.QueryRow(ctx,
		"SELECT id, email, password, role, created_at, updated_at FROM users WHERE email = $1",
		email).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := models.DB.QueryRow(ctx,
		"SELECT id, email, password, role, created_at, updated_at FROM users WHERE id = $1",
		id).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	return models.DB.QueryRow(ctx,
		"INSERT INTO users (email, password, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $4) RETURNING id, created_at, updated_at",
		user.Email, user.Password, user.Role, now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	now := time.Now()
	return models.DB.QueryRow(ctx,
		"INSERT INTO user_profiles (user_id, full_name, phone, address, photo_url, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id",
		profile.UserID, profile.FullName, profile.Phone, profile.Address, profile.PhotoURL, now,
	).Scan(&profile.ID)
}

func (r *UserRepository) GetProfile(ctx context.Context, userID int) (*models.UserProfile, error) {
	var p models.UserProfile
	err := models.DB.QueryRow(ctx, `
		SELECT id, user_id, COALESCE(full_name, ''), COALESCE(phone, ''), COALESCE(address, ''),
			COALESCE(photo_url, ''), created_at, updated_at
		FROM user_profiles WHERE user_id = $1`,
		userID).Scan(&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.Address, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	_, err := models.DB.Exec(ctx,
		"UPDATE user_profiles SET full_name=$1, phone=$2, address=$3, photo_url=$4, updated_at=$5 WHERE user_id=$6",
		profile.FullName, profile.Phone, profile.Address, profile.PhotoURL, time.Now(), profile.UserID)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	_, err := models.DB.Exec(ctx,
		"UPDATE users SET password=$1, updated_at=$2 WHERE id=$3",
		hashedPassword, time.Now(), userID)
	return err
}

func (r *UserRepository) GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	var u models.UserWithProfile
	err := models.DB.QueryRow(ctx, `
		SELECT u.id, u.email, u.role, COALESCE(p.full_name, ''), COALESCE(p.phone, ''),
			COALESCE(p.address, ''), COALESCE(p.photo_url, ''), u.created_at
		FROM users u LEFT JOIN user_profiles p ON u.id = p.user_id
		WHERE u.id = $1`,
		userID).Scan(&u.ID, &u.Email, &u.Role, &u.FullName, &u.Phone, &u.Address, &u.PhotoURL, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) SavePasswordReset(ctx context.Context, email, otp string, expiresAt time.Time) error {
	if _, err := models.DB.Exec(ctx, "DELETE FROM password_resets WHERE email = $1", email); err != nil {
		return err
	}
	_, err := models.DB.Exec(ctx,
		"INSERT INTO password_resets (email, otp, expires_at, created_at) VALUES ($1, $2, $3, $4)",
		email, otp, expiresAt, time.Now())
	return err
}

func (r *UserRepository) GetPasswordReset(ctx context.Context, email string) (*models.PasswordReset, error) {
	var pr models.PasswordReset
	err := models.DB.QueryRow(ctx,
		"SELECT id, email, otp, expires_at, created_at FROM password_resets WHERE email = $1",
		email).Scan(&pr.ID, &pr.Email, &pr.OTP, &pr.ExpiresAt, &pr.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *UserRepository) DeletePasswordReset(ctx context.Context, email string) error {
	_, err := models.DB.Exec(ctx, "DELETE FROM password_resets WHERE email = $1", email)
	return err
}
