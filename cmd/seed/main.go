package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/anik404/memory-lane/backend/internal/models"
	"github.com/anik404/memory-lane/backend/internal/repositories"
	"github.com/anik404/memory-lane/backend/pkg/config"
)

type seedPost struct {
	content string
	image   string
	tags    []string
	decade  string
}

var nostalgicPosts = []seedPost{
	{"blowing on your NES cartridges to make them work?", "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800&h=600&fit=crop", []string{"Games", "Gadgets"}, "80s"},
	{"rewinding VHS tapes and hoping you stopped at the right spot?", "https://images.unsplash.com/photo-1486401899868-0e435ed85128?w=800&h=600&fit=crop", []string{"Movies", "Gadgets"}, "90s"},
	{"waiting for your favorite song to come on the radio so you could record it on cassette?", "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=800&h=600&fit=crop", []string{"Music"}, "90s"},
	{"the satisfying click of hanging up a phone?", "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=800&h=600&fit=crop", []string{"Gadgets"}, "80s"},
	{"Saturday morning cartoons and sugary cereal?", "https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?w=800&h=600&fit=crop", []string{"Cartoons", "TV Shows"}, "90s"},
	{"having to choose between the internet and using the phone?", "https://images.unsplash.com/photo-1550745165-9bc0b252726f?w=800&h=600&fit=crop", []string{"Gadgets"}, "90s"},
	{"Blockbuster Friday nights and the stress of late fees?", "https://images.unsplash.com/photo-1489599112320-0e3a5b7d0ade?w=800&h=600&fit=crop", []string{"Movies", "Places"}, "2000s"},
	{"when MTV actually played music videos?", "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=600&fit=crop", []string{"Music", "TV Shows"}, "90s"},
	{"Tamagotchis and the constant fear they would die?", "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=800&h=600&fit=crop", []string{"Toys", "Games"}, "90s"},
	{"dial-up internet sounds and 56k modems?", "https://images.unsplash.com/photo-1484807352052-23338990c6c6?w=800&h=600&fit=crop", []string{"Gadgets"}, "90s"},
	{"having to print out MapQuest directions before going anywhere?", "https://images.unsplash.com/photo-1516979187457-637abb4f9353?w=800&h=600&fit=crop", []string{"Gadgets"}, "2000s"},
	{"CD players with anti-skip protection for jogging?", "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=600&fit=crop", []string{"Music", "Gadgets"}, "90s"},
	{"when phones had actual buttons and you could text without looking?", "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=800&h=600&fit=crop", []string{"Gadgets"}, "2000s"},
	{"The Oregon Trail and dying of dysentery in computer class?", "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800&h=600&fit=crop", []string{"Games"}, "90s"},
	{"pagers and feeling so important when yours went off?", "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=800&h=600&fit=crop", []string{"Gadgets"}, "90s"},
	{"Furby's creepy midnight chatter?", "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3?w=800&h=600&fit=crop", []string{"Toys"}, "90s"},
	{"burning CDs and making the perfect mixtape?", "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=600&fit=crop", []string{"Music"}, "2000s"},
	{"AIM away messages and spending hours crafting the perfect one?", "https://images.unsplash.com/photo-1484807352052-23338990c6c6?w=800&h=600&fit=crop", []string{"Gadgets"}, "2000s"},
	{"Gameboy under the covers with that tiny light attachment?", "https://images.unsplash.com/photo-1511512578047-dfb367046420?w=800&h=600&fit=crop", []string{"Games", "Gadgets"}, "90s"},
	{"when having a cell phone made you the coolest kid in school?", "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=800&h=600&fit=crop", []string{"Gadgets"}, "2000s"},
}

var nostalgicComments = []string{
	"OMG yes! I did this every single day!",
	"This takes me back to being 12 again!",
	"I still have mine somewhere in the attic!",
	"The good old days when things were simpler",
	"My mom threw mine away and I'm still not over it",
	"I remember saving up my allowance for months to buy this!",
	"This was literally my childhood!",
	"Why did we ever think this was cool?",
	"I had the exact same one in red!",
	"Those were the days... *sigh*",
	"I spent SO many hours doing this",
	"My parents thought I was crazy for wanting this",
	"Best purchase of my teenage years",
	"I miss when technology was this simple",
	"This unlocked a core memory!",
}

var usernames = []string{
	"90sKid", "NostalgicNinja", "RetroRaven", "VintageVibe", "MemoryKeeper",
	"ThrowbackThursday", "ClassicCool", "OldSchoolRule", "RetroRewind", "NostalgiaTrip",
	"BackInMyDay", "GoodOldDays", "TimeWarp", "RetroGamer", "VintageCollector",
	"NostalgicSoul", "MemoryMaker", "PastPerfect", "TimeCapsule", "RetroRealm",
}

var bios = []string{
	"Child of the 90s who still believes in Saturday morning cartoons",
	"Collector of vintage everything, especially if it has batteries",
	"Missing the days when phones were just phones",
	"Professional nostalgic and amateur time traveler",
	"Still waiting for my Hogwarts letter",
	"Proud owner of 47 Tamagotchis (only 3 are still alive)",
	"Will trade modern tech for a working Game Boy any day",
	"Remember when the internet made that screechy sound?",
	"Blockbuster frequent flyer, RIP to the real MVP",
	"Dial-up survivor and proud of it",
}

func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return string(hash)
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Println("Clearing existing data...")
	for _, name := range []string{"users", "posts", "comments"} {
		if _, err := db.Database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}

	userRepo := repositories.NewMongoUserRepository(db.Database)
	postRepo := repositories.NewMongoPostRepository(db.Database)
	commentRepo := repositories.NewMongoCommentRepository(db.Database)

	log.Println("Creating users...")
	users := []*models.User{
		{
			Username: "demo",
			Email:    "demo@example.com",
			Password: hashPassword("demo123"),
			Avatar:   "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?w=150&h=150&fit=crop&crop=face",
			Bio:      "Demo user for testing the platform",
		},
		{
			Username: "nostalgia",
			Email:    "nostalgia@example.com",
			Password: hashPassword("90skid"),
			Avatar:   "https://images.unsplash.com/photo-1494790108755-2616b612b647?w=150&h=150&fit=crop&crop=face",
			Bio:      "Professional 90s kid and nostalgia enthusiast",
		},
	}
	// One hash for all the filler accounts, bcrypt is slow on purpose.
	fillerPassword := hashPassword("password123")
	for i, name := range usernames {
		users = append(users, &models.User{
			Username: name,
			Email:    fmt.Sprintf("%s@example.com", name),
			Password: fillerPassword,
			Avatar:   models.DefaultAvatar,
			Bio:      bios[i%len(bios)],
		})
	}
	for _, u := range users {
		if err := userRepo.CreateUser(ctx, u); err != nil {
			log.Fatalf("Failed to create user %q: %v", u.Username, err)
		}
	}

	anyUser := func() *models.User { return users[rand.IntN(len(users))] }

	log.Println("Creating posts...")
	posts := make([]*models.Post, 0, len(nostalgicPosts))
	for _, sp := range nostalgicPosts {
		post := &models.Post{
			Author:  anyUser().ID,
			Content: sp.content,
			Image:   sp.image,
			Tags:    sp.tags,
			Decade:  sp.decade,
		}
		if err := postRepo.CreatePost(ctx, post); err != nil {
			log.Fatalf("Failed to create post: %v", err)
		}
		posts = append(posts, post)
	}

	log.Println("Creating comments...")
	commentCount := 0
	for _, post := range posts {
		for i := 0; i < 3+rand.IntN(8); i++ {
			comment := &models.Comment{
				Author:  anyUser().ID,
				Post:    post.ID,
				Content: nostalgicComments[rand.IntN(len(nostalgicComments))],
			}
			if err := commentRepo.CreateComment(ctx, comment); err != nil {
				log.Fatalf("Failed to create comment: %v", err)
			}
			if err := postRepo.AddComment(ctx, post.ID, comment.ID); err != nil {
				log.Fatalf("Failed to attach comment: %v", err)
			}
			commentCount++
		}
	}

	log.Println("Adding likes...")
	for _, post := range posts {
		numLikes := 5 + rand.IntN(len(users)-4)
		for _, idx := range rand.Perm(len(users))[:numLikes] {
			liker := users[idx]
			if err := postRepo.AddLike(ctx, post.ID, liker.ID); err != nil {
				log.Fatalf("Failed to like post: %v", err)
			}
			if err := userRepo.AddLikedPost(ctx, liker.ID, post.ID); err != nil {
				log.Fatalf("Failed to record liked post: %v", err)
			}
		}
	}

	log.Printf("Seeded %d users, %d posts and %d comments.", len(users), len(posts), commentCount)
	log.Println("Demo login credentials:")
	log.Println("  Email: demo@example.com      | Password: demo123")
	log.Println("  Email: nostalgia@example.com | Password: 90skid")
}
