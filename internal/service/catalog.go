package service

import "github.com/sakif/travel-blog/internal/model"

// DefaultCatalog returns the destinations seeded into an empty store, in
// listing order. Each call returns a fresh slice that the caller may modify.
func DefaultCatalog() []model.Destination {
	return []model.Destination{
		{Title: "Kashmir", Description: "Experience the Himalayas...", ImgSrc: "images/kashmir.jpg", IsPopular: true},
		{Title: "Varanasi", Description: "Explore Kashi...", ImgSrc: "images/varanasi.jpg"},
		{Title: "Manali", Description: "Explore this trending destination...", ImgSrc: "images/manali.jpg"},
		{Title: "Vrindavan", Description: "Divine love...", ImgSrc: "images/mero_vrindavan.jpg"},
		{Title: "Spiti Valley", Description: "High-altitude desert in Himachal Pradesh, known for monasteries and stunning landscapes.", ImgSrc: "images/spiti.jpg"},
		{Title: "Landour", Description: "A serene hill station near Mussoorie, known for its colonial charm.", ImgSrc: "images/landour.jpg"},
		{Title: "Mussoorie", Description: "Known as the Queen of Hills, Mussoorie offers breathtaking Himalayan views.", ImgSrc: "images/mussoorie.jpg", IsPopular: true},
		{Title: "Chopta", Description: "Often called the 'Mini Switzerland of India', Chopta is the base for trekking and nature walks.", ImgSrc: "images/chopta.jpg", IsPopular: true},
		{Title: "Nainital", Description: "A popular lake town surrounded by hills, offering boating, ropeway rides, and markets.", ImgSrc: "images/nainital.jpg", IsPopular: true},
		{Title: "Ranikhet", Description: "A peaceful hill station known for apple orchards, pine forests, and panoramic views.", ImgSrc: "images/ranikhet.jpg"},
		{Title: "Udaipur", Description: "City of lakes, palaces, and romantic boat rides.", ImgSrc: "images/udaipur.jpg", IsPopular: true},
		{Title: "Mysore", Description: "Famous for its palaces, gardens, and rich culture.", ImgSrc: "images/mysore.jpg"},
		{Title: "Darjeeling", Description: "Hill station in West Bengal with tea gardens and mountains.", ImgSrc: "images/darjeeling.jpg", IsPopular: true},
		{Title: "Jaipur", Description: "The Pink City of Rajasthan with forts and palaces.", ImgSrc: "images/jaipur.jpg", IsPopular: true},
		{Title: "Goa", Description: "Famous for beaches, nightlife, and water sports.", ImgSrc: "images/goa.jpg", IsPopular: true},
		{Title: "Rishikesh", Description: "Known for yoga, adventure sports, and the Ganges.", ImgSrc: "images/rishikesh.jpg"},
		{Title: "Andaman Islands", Description: "Tropical paradise with pristine beaches and coral reefs.", ImgSrc: "images/AndamanIslands.jpg", IsPopular: true},
		{Title: "Hampi", Description: "UNESCO World Heritage site with ancient ruins and boulders.", ImgSrc: "images/hampi.jpg"},
		{Title: "Shimla", Description: "Popular hill station in Himachal Pradesh with colonial charm.", ImgSrc: "images/shimla.jpg", IsPopular: true},
		{Title: "Leh-Ladakh", Description: "Adventure destination with breathtaking mountains and monasteries.", ImgSrc: "images/leh.jpg", IsPopular: true},
		{Title: "Kerala Backwaters", Description: "Relax in houseboats amidst palm-fringed lagoons and canals.", ImgSrc: "images/kerala.jpg", IsPopular: true},
		{Title: "Shillong", Description: "Scotland of the East, known for waterfalls, music, and vibrant culture.", ImgSrc: "images/shillong.jpg"},
		{Title: "Ranthambore", Description: "National park in Rajasthan, best known for tiger safaris.", ImgSrc: "images/ranthambore.jpg", IsPopular: true},
		{Title: "Pondicherry", Description: "French colonial town with beaches, cafes, and Auroville.", ImgSrc: "images/pondicherry.jpg"},
		{Title: "Coorg", Description: "Coffee capital of India, lush green hills, waterfalls, and trekking.", ImgSrc: "images/coorg.jpg", IsPopular: true},
		{Title: "Agra", Description: "Home to the Taj Mahal, one of the Seven Wonders of the World.", ImgSrc: "images/agra.jpg", IsPopular: true},
		{Title: "Cherrapunji", Description: "One of the wettest places on Earth, famous for living root bridges and waterfalls.", ImgSrc: "images/cherrapunji.jpg"},
		{Title: "Daman and Diu", Description: "Coastal union territory known for Portuguese forts, beaches, and churches.", ImgSrc: "images/daman.jpg"},
		{Title: "Ziro Valley", Description: "Beautiful valley in Arunachal Pradesh, home to the Apatani tribe and scenic landscapes.", ImgSrc: "images/ziro.jpg"},
	}
}
