package services

// Services defined in this package:
// - UserService: user account CRUD and password handling
// - MentorService: mentor profiles, filtering, ratings and seeding
// - MentorshipRequestService: request lifecycle and population
// - MentoringSessionService: session scheduling and lifecycle
// - LanguageService / CountryService / MajorService: reference data
