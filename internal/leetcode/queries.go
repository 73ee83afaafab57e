package leetcode

// Requête combinée principale : couvre profil, badges, langages, tags,
// compteurs de soumissions, calendrier annuel et soumissions récentes en un
// seul appel.
const QueryFullUserData = `query fullUserData($username: String!, $limit: Int!, $year: Int) {
  matchedUser(username: $username) {
    username
    profile {
      realName
      userAvatar
      ranking
    }
    badges {
      id
      name
      category
      creationDate
      icon
    }
    languageProblemCount {
      languageName
      problemsSolved
    }
    tagProblemCounts {
      advanced { tagName problemsSolved }
      intermediate { tagName problemsSolved }
      fundamental { tagName problemsSolved }
    }
    submitStats {
      acSubmissionNum { difficulty count submissions }
      totalSubmissionNum { difficulty count submissions }
    }
    userCalendar(year: $year) {
      streak
      totalActiveDays
      submissionCalendar
    }
  }
  recentAcSubmissionList(username: $username, limit: $limit) {
    id
    title
    titleSlug
    timestamp
  }
}`

// Requêtes de repli : chacune ne couvre qu'une facette, utilisables quand la
// requête combinée n'est pas disponible.
const QueryUserPublicProfile = `query userPublicProfile($username: String!) {
  matchedUser(username: $username) {
    profile {
      realName
      userAvatar
      ranking
    }
  }
}`

const QueryUserSessionProgress = `query userSessionProgress($username: String!) {
  matchedUser(username: $username) {
    submitStats {
      acSubmissionNum { difficulty count submissions }
      totalSubmissionNum { difficulty count submissions }
    }
  }
}`

const QuerySkillStats = `query skillStats($username: String!) {
  matchedUser(username: $username) {
    tagProblemCounts {
      advanced { tagName problemsSolved }
      intermediate { tagName problemsSolved }
      fundamental { tagName problemsSolved }
    }
  }
}`

const QueryLanguageStats = `query languageStats($username: String!) {
  matchedUser(username: $username) {
    languageProblemCount {
      languageName
      problemsSolved
    }
  }
}`

const QueryUserBadges = `query userBadges($username: String!) {
  matchedUser(username: $username) {
    badges { id name category creationDate icon }
  }
}`

const QueryUserProfileCalendar = `query userProfileCalendar($username: String!, $year: Int) {
  matchedUser(username: $username) {
    userCalendar(year: $year) {
      streak
      totalActiveDays
      submissionCalendar
    }
  }
}`
